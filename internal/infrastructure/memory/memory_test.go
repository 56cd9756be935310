package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

func TestCatalogRepo_FindByBarcode(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(SeedProducts())

	p, err := repo.FindByBarcode(ctx, "2034")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Flour", p.Name)
	assert.True(t, decimal.NewFromInt(89).Equal(p.Stock))

	p, err = repo.FindByBarcode(ctx, "9999")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCatalogRepo_ListByStore(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(SeedProducts())

	storeA, err := repo.ListByStore(ctx, "Store A")
	require.NoError(t, err)
	names := make([]string, 0, len(storeA))
	for _, p := range storeA {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Tomatoes", "Olive Oil", "Chicken Breast", "Pasta"}, names)

	none, err := repo.ListByStore(ctx, "Store Z")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(SeedProducts())

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	p.Stock = decimal.Zero

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(45).Equal(again.Stock))
}

func TestSeedProducts_StockStatus(t *testing.T) {
	status := map[string]string{}
	for _, p := range SeedProducts() {
		status[p.Name] = p.StockStatus()
	}
	assert.Equal(t, entity.StockStatusLow, status["Olive Oil"])
	assert.Equal(t, entity.StockStatusCritical, status["Chicken Breast"])
	assert.Equal(t, entity.StockStatusNormal, status["Tomatoes"])
}

func TestTransferOrderRepo_NextIDAndCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewTransferOrderRepository(SeedOrders())

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORD-005", id)

	order := &entity.TransferOrder{ID: id, Status: entity.OrderStatusPending, CreatedAt: time.Date(2026, 1, 21, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Create(ctx, order))
	assert.ErrorIs(t, repo.Create(ctx, order), domain.ErrDuplicate)

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "ORD-005", list[0].ID)

	pending, err := repo.List(ctx, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestTransactionRepo_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(SeedTransactions())

	all, err := repo.List(ctx, repository.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "TRX-001", all[0].ID)
	assert.Equal(t, "TRX-004", all[4].ID)

	storeB, err := repo.List(ctx, repository.TransactionFilter{From: "Store B"})
	require.NoError(t, err)
	assert.Len(t, storeB, 2)

	since := time.Date(2026, 1, 20, 13, 0, 0, 0, time.UTC)
	until := time.Date(2026, 1, 20, 14, 0, 0, 0, time.UTC)
	window, err := repo.List(ctx, repository.TransactionFilter{Since: &since, Until: &until})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "TRX-006", id)
}

func TestSeedOperators_HashesPIN(t *testing.T) {
	ops, err := SeedOperators("4321")
	require.NoError(t, err)
	require.NotEmpty(t, ops)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(ops[0].PINHash), []byte("4321")))
}
