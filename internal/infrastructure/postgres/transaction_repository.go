package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo libro de trazabilidad (tabla ledger_transactions, solo INSERT).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// List arma el WHERE solo con los criterios presentes. seq desempata asientos del mismo instante.
func (r *TransactionRepo) List(ctx context.Context, filter repository.TransactionFilter) ([]entity.Transaction, error) {
	var (
		conds []string
		args  []any
	)
	if filter.From != "" {
		args = append(args, filter.From)
		conds = append(conds, fmt.Sprintf("from_store = $%d", len(args)))
	}
	if filter.Since != nil {
		args = append(args, *filter.Since)
		conds = append(conds, fmt.Sprintf("occurred_at >= $%d", len(args)))
	}
	if filter.Until != nil {
		args = append(args, *filter.Until)
		conds = append(conds, fmt.Sprintf("occurred_at < $%d", len(args)))
	}
	query := `
		SELECT id, order_id, product, quantity, measurement, from_store, to_location,
		       occurred_at, user_name, cost, status
		FROM ledger_transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY occurred_at DESC, seq ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.OrderID, &t.Product, &t.Quantity, &t.Measurement, &t.From, &t.To,
			&t.Timestamp, &t.User, &t.Cost, &t.Status); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TransactionRepo) NextID(ctx context.Context) (string, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('ledger_transaction_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("next transaction id: %w", err)
	}
	return formatSeq("TRX", n), nil
}

const insertTransaction = `
	INSERT INTO ledger_transactions
		(id, order_id, product, quantity, measurement, from_store, to_location, occurred_at, user_name, cost, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// Append inserta los asientos en un solo batch.
func (r *TransactionRepo) Append(ctx context.Context, txs ...entity.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, t := range txs {
		batch.Queue(insertTransaction, t.ID, t.OrderID, t.Product, t.Quantity, t.Measurement, t.From, t.To,
			t.Timestamp, t.User, t.Cost, t.Status)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert transactions: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
