package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/memory"
)

type csvStub struct{ got ledger.Report }

func (s *csvStub) Format() string      { return "csv" }
func (s *csvStub) ContentType() string { return "text/csv" }
func (s *csvStub) Export(ctx context.Context, r ledger.Report) ([]byte, error) {
	s.got = r
	return []byte("id,product"), nil
}

// 2026-01-20 es martes.
var seedNow = time.Date(2026, 1, 20, 18, 0, 0, 0, time.UTC)

func newUseCase(now time.Time, exporters ...ledger.Exporter) *ledger.UseCase {
	repo := memory.NewTransactionRepository(memory.SeedTransactions())
	return ledger.NewUseCase(repo, nil, exporters...).WithClock(func() time.Time { return now })
}

func TestList_TotalsAndOrder(t *testing.T) {
	out, err := newUseCase(seedNow).List(context.Background(), ledger.Filter{})
	require.NoError(t, err)
	assert.Equal(t, ledger.PeriodAll, out.Period)
	require.Len(t, out.Items, 5)
	assert.Equal(t, "TRX-001", out.Items[0].ID)
	assert.Equal(t, 5, out.Totals.Count)
	assert.True(t, decimal.RequireFromString("171").Equal(out.Totals.TotalCost), out.Totals.TotalCost.String())
	assert.True(t, decimal.NewFromInt(33).Equal(out.Totals.Quantities["kg"]))
	assert.True(t, decimal.NewFromInt(2).Equal(out.Totals.Quantities["L"]))
}

func TestList_SearchAndStore(t *testing.T) {
	uc := newUseCase(seedNow)
	ctx := context.Background()

	byOrder, err := uc.List(ctx, ledger.Filter{Query: "ord-002"})
	require.NoError(t, err)
	assert.Len(t, byOrder.Items, 2)

	byProduct, err := uc.List(ctx, ledger.Filter{Query: "pasta"})
	require.NoError(t, err)
	require.Len(t, byProduct.Items, 1)
	assert.Equal(t, "TRX-004", byProduct.Items[0].ID)

	storeB, err := uc.List(ctx, ledger.Filter{Store: "Store B"})
	require.NoError(t, err)
	assert.Len(t, storeB.Items, 2)
	assert.True(t, decimal.NewFromInt(60).Equal(storeB.Totals.TotalCost))
}

func TestList_Periods(t *testing.T) {
	ctx := context.Background()

	today, err := newUseCase(seedNow).List(ctx, ledger.Filter{Period: ledger.PeriodToday})
	require.NoError(t, err)
	assert.Len(t, today.Items, 5)

	nextDay := seedNow.AddDate(0, 0, 1)
	none, err := newUseCase(nextDay).List(ctx, ledger.Filter{Period: ledger.PeriodToday})
	require.NoError(t, err)
	assert.Empty(t, none.Items)

	week, err := newUseCase(nextDay).List(ctx, ledger.Filter{Period: ledger.PeriodWeek})
	require.NoError(t, err)
	assert.Len(t, week.Items, 5)

	nextMonth := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	month, err := newUseCase(nextMonth).List(ctx, ledger.Filter{Period: ledger.PeriodMonth})
	require.NoError(t, err)
	assert.Empty(t, month.Items)

	_, err = newUseCase(seedNow).List(ctx, ledger.Filter{Period: "decade"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPeriodStart_WeekStartsMonday(t *testing.T) {
	sunday := time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC)
	start, err := ledger.PeriodStart(ledger.PeriodWeek, sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), *start)

	start, err = ledger.PeriodStart(ledger.PeriodAll, sunday)
	require.NoError(t, err)
	assert.Nil(t, start)
}

func TestExport(t *testing.T) {
	stub := &csvStub{}
	uc := newUseCase(seedNow, stub)

	file, err := uc.Export(context.Background(), ledger.Filter{Query: "tomatoes"}, "CSV")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "ledger-20260120-180000.csv", file.Filename)
	assert.Equal(t, 1, stub.got.Totals.Count)

	_, err = uc.Export(context.Background(), ledger.Filter{}, "docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Equal(t, []string{"csv"}, uc.Formats())
}
