package xmldoc

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
	"github.com/jhoicas/stockbridge-api/internal/application/orders"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

func sampleManifest() orders.Manifest {
	item := entity.TransferOrderItem{ID: 1, ProductID: 1, Name: "Tomatoes & Co", Barcode: "4011", Quantity: decimal.NewFromInt(5), Measurement: "kg"}
	return orders.Manifest{
		Order: entity.TransferOrder{
			ID: "ORD-001", Status: entity.OrderStatusPending, Store: "Store A", Destination: "Kitchen",
			CreatedBy: "John Doe", CreatedAt: time.Date(2026, 1, 20, 14, 30, 0, 0, time.UTC),
			Items: []entity.TransferOrderItem{item},
		},
		Lines:     []orders.ManifestLine{{Item: item, UnitCost: decimal.RequireFromString("9.10"), Cost: decimal.RequireFromString("45.5")}},
		TotalCost: decimal.RequireFromString("45.5"),
	}
}

func TestBuildManifest_DigestVerifies(t *testing.T) {
	b := NewManifestBuilder()
	b.now = func() time.Time { return time.Date(2026, 1, 20, 15, 0, 0, 0, time.UTC) }

	body, digest, err := b.BuildManifest(context.Background(), sampleManifest())
	require.NoError(t, err)
	assert.Len(t, digest, 64)
	assert.Contains(t, string(body), "<DigestValue>"+digest+"</DigestValue>")
	assert.Contains(t, string(body), "<TotalCost>45.50</TotalCost>")

	ok, err := VerifyDigest(body)
	require.NoError(t, err)
	assert.True(t, ok)

	tampered := strings.Replace(string(body), "<Cost>45.50</Cost>", "<Cost>1.00</Cost>", 1)
	ok, err = VerifyDigest([]byte(tampered))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuildManifest_IsDeterministic(t *testing.T) {
	b := NewManifestBuilder()
	b.now = func() time.Time { return time.Date(2026, 1, 20, 15, 0, 0, 0, time.UTC) }
	_, d1, err := b.BuildManifest(context.Background(), sampleManifest())
	require.NoError(t, err)
	_, d2, err := b.BuildManifest(context.Background(), sampleManifest())
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestLedgerExporter(t *testing.T) {
	r := ledger.Report{
		Filter: ledger.Filter{Period: ledger.PeriodAll, Store: ledger.StoreAll},
		Entries: []entity.Transaction{{
			ID: "TRX-001", OrderID: "ORD-001", Product: "Tomatoes", Quantity: decimal.NewFromInt(5), Measurement: "kg",
			From: "Store A", To: "Kitchen", Timestamp: time.Date(2026, 1, 20, 14, 30, 0, 0, time.UTC),
			User: "John Doe", Cost: decimal.RequireFromString("45.5"), Status: "completed",
		}},
		Totals: ledger.Totals{
			Count:      1,
			TotalCost:  decimal.RequireFromString("45.5"),
			Quantities: map[string]decimal.Decimal{"kg": decimal.NewFromInt(5)},
		},
		GeneratedAt: time.Date(2026, 1, 20, 18, 0, 0, 0, time.UTC),
	}
	e := NewLedgerExporter()
	assert.Equal(t, "xml", e.Format())

	body, err := e.Export(context.Background(), r)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(body))
	tx := doc.FindElement("//Transaction[@id='TRX-001']")
	require.NotNil(t, tx)
	assert.Equal(t, "Tomatoes", tx.SelectElement("Product").Text())
	assert.Equal(t, "45.50", doc.FindElement("//Totals/TotalCost").Text())

	ok, err := VerifyDigest(body)
	require.NoError(t, err)
	assert.True(t, ok)
}
