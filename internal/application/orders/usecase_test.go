package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockbridge-api/internal/application/orders"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
	"github.com/jhoicas/stockbridge-api/internal/domain/transfer"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/memory"
)

type slipStub struct{ order entity.TransferOrder }

func (s *slipStub) RenderSlip(ctx context.Context, order entity.TransferOrder) ([]byte, error) {
	s.order = order
	return []byte("%PDF-stub"), nil
}

type manifestStub struct{ m orders.Manifest }

func (s *manifestStub) BuildManifest(ctx context.Context, m orders.Manifest) ([]byte, string, error) {
	s.m = m
	return []byte("<TransferManifest/>"), "abc123", nil
}

type fixture struct {
	uc       *orders.UseCase
	txs      *memory.TransactionRepo
	slip     *slipStub
	manifest *manifestStub
}

func newFixture() fixture {
	orderRepo := memory.NewTransferOrderRepository(memory.SeedOrders())
	txRepo := memory.NewTransactionRepository(memory.SeedTransactions())
	slip, manifest := &slipStub{}, &manifestStub{}
	uc := orders.NewUseCase(
		orderRepo,
		memory.NewCatalogRepository(memory.SeedProducts()),
		memory.NewTxRunner(orderRepo, txRepo),
		slip,
		manifest,
		nil,
	)
	return fixture{uc: uc, txs: txRepo, slip: slip, manifest: manifest}
}

func TestList_FiltersByStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	all, err := f.uc.List(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all.Items, 4)
	assert.Equal(t, "ORD-001", all.Items[0].ID)

	pending, err := f.uc.List(ctx, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending.Items, 2)

	_, err = f.uc.List(ctx, "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_ProgressAndTimeline(t *testing.T) {
	f := newFixture()
	out, err := f.uc.Get(context.Background(), "ORD-002")
	require.NoError(t, err)
	assert.Equal(t, 2, out.ItemCount)
	assert.Equal(t, 1, out.PickedCount)
	assert.True(t, decimal.NewFromInt(50).Equal(out.Progress))
	require.Len(t, out.Timeline, 5)
	assert.Nil(t, out.Timeline[3].At)

	_, err = f.uc.Get(context.Background(), "ORD-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecord_CreatesPendingOrderAndLedgerEntries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	at := time.Date(2026, 1, 21, 9, 30, 0, 0, time.UTC)
	sub := transfer.Submission{
		Store:       "Store A",
		Destination: "Kitchen",
		Operator:    "John Doe",
		Lines: []transfer.CartLine{
			{ProductID: 1, Name: "Tomatoes", Barcode: "4011", Measurement: "kg", Quantity: 5, AvailableStock: decimal.NewFromInt(45)},
		},
		SubmittedAt: at,
	}

	id, err := f.uc.Record(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, "ORD-005", id)

	out, err := f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, "John Doe", out.CreatedBy)
	require.Len(t, out.Timeline, 3)
	assert.Equal(t, orders.EventCreated, out.Timeline[0].Event)
	assert.True(t, out.Timeline[0].Completed)

	entries, err := f.txs.List(ctx, repository.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assert.Equal(t, "TRX-006", entries[0].ID)
	assert.Equal(t, id, entries[0].OrderID)
	assert.True(t, decimal.RequireFromString("45.5").Equal(entries[0].Cost))
}

func TestRecord_EmptySubmission(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Record(context.Background(), transfer.Submission{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestManifest_ValuesItemsAtUnitCost(t *testing.T) {
	f := newFixture()
	body, digest, err := f.uc.Manifest(context.Background(), "ORD-004")
	require.NoError(t, err)
	assert.NotEmpty(t, body)
	assert.Equal(t, "abc123", digest)

	require.Len(t, f.manifest.m.Lines, 3)
	// Mozzarella 4 x 12.00 + Tomatoes 8 x 9.10; Basil no está en catálogo.
	assert.True(t, decimal.RequireFromString("120.8").Equal(f.manifest.m.TotalCost), f.manifest.m.TotalCost.String())
	assert.True(t, f.manifest.m.Lines[2].Cost.IsZero())
}

func TestSlip_UnknownOrder(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Slip(context.Background(), "ORD-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pdf, err := f.uc.Slip(context.Background(), "ORD-001")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "ORD-001", f.slip.order.ID)
}
