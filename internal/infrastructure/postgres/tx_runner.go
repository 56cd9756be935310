package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockbridge-api/internal/application/orders"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre la transacción, entrega a fn los repos de órdenes y libro atados a ella y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.TransferOrderRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTransferOrderRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
