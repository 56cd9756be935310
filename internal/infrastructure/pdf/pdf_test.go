package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

func TestRenderSlip(t *testing.T) {
	order := entity.TransferOrder{
		ID: "ORD-004", Status: entity.OrderStatusPending, Store: "Store A", Destination: "Food Court",
		CreatedBy: "Sarah Wilson", CreatedAt: time.Date(2026, 1, 20, 14, 15, 0, 0, time.UTC),
		Items: []entity.TransferOrderItem{
			{ID: 1, ProductID: 1, Name: "Tomatoes", Barcode: "4011", Quantity: decimal.NewFromInt(3), Measurement: "kg"},
			{ID: 2, Name: "Basil", Quantity: decimal.RequireFromString("0.5"), Measurement: "kg", Picked: true},
		},
	}

	body, err := NewMarotoPDFGenerator().RenderSlip(context.Background(), order)
	require.NoError(t, err)
	require.Greater(t, len(body), 4)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestLedgerExporter(t *testing.T) {
	e := NewLedgerExporter()
	assert.Equal(t, "pdf", e.Format())
	assert.Equal(t, "application/pdf", e.ContentType())

	r := ledger.Report{
		Filter: ledger.Filter{Period: ledger.PeriodAll, Store: "Store B", Query: "flour"},
		Entries: []entity.Transaction{{
			ID: "TRX-003", OrderID: "ORD-002", Product: "Flour", Quantity: decimal.NewFromInt(10), Measurement: "kg",
			From: "Store B", To: "Kitchen", Timestamp: time.Date(2026, 1, 20, 13, 45, 0, 0, time.UTC),
			User: "Jane Smith", Cost: decimal.NewFromInt(15), Status: "in-progress",
		}},
		Totals: ledger.Totals{
			Count:      1,
			TotalCost:  decimal.NewFromInt(15),
			Quantities: map[string]decimal.Decimal{"kg": decimal.NewFromInt(10)},
		},
		GeneratedAt: time.Date(2026, 1, 20, 18, 0, 0, 0, time.UTC),
	}
	body, err := e.Export(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))

	empty, err := e.Export(context.Background(), ledger.Report{Filter: ledger.Filter{Period: ledger.PeriodToday, Store: ledger.StoreAll}})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(empty[:4]))
}
