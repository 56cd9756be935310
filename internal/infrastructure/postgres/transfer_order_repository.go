package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.TransferOrderRepository = (*TransferOrderRepo)(nil)

// TransferOrderRepo tablero de órdenes: transfer_orders con sus ítems y timeline.
type TransferOrderRepo struct {
	q Querier
}

// NewTransferOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferOrderRepository(q Querier) *TransferOrderRepo {
	return &TransferOrderRepo{q: q}
}

const orderColumns = `id, status, store, destination, created_by, assigned_to, created_at`

func (r *TransferOrderRepo) List(ctx context.Context, status string) ([]entity.TransferOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM transfer_orders`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfer orders: %w", err)
	}
	var list []entity.TransferOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan transfer order: %w", err)
		}
		list = append(list, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		if err := r.loadChildren(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *TransferOrderRepo) GetByID(ctx context.Context, id string) (*entity.TransferOrder, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM transfer_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer order: %w", err)
	}
	if err := r.loadChildren(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *TransferOrderRepo) NextID(ctx context.Context) (string, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('transfer_order_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("next transfer order id: %w", err)
	}
	return formatSeq("ORD", n), nil
}

// Create inserta cabecera, ítems y timeline. Llamarlo dentro de TxRunner para que sea atómico.
func (r *TransferOrderRepo) Create(ctx context.Context, order *entity.TransferOrder) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO transfer_orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.Status, order.Store, order.Destination, order.CreatedBy, order.AssignedTo, order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transfer order: %w", err)
	}

	batch := &pgx.Batch{}
	for _, it := range order.Items {
		batch.Queue(`
			INSERT INTO transfer_order_items (order_id, line_no, product_id, name, barcode, quantity, measurement, picked)
			VALUES ($1, $2, NULLIF($3::bigint, 0), $4, $5, $6, $7, $8)`,
			order.ID, it.ID, it.ProductID, it.Name, it.Barcode, it.Quantity, it.Measurement, it.Picked)
	}
	for i, ev := range order.Timeline {
		batch.Queue(`
			INSERT INTO transfer_order_events (order_id, position, event, at, user_name, completed)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, i, ev.Event, ev.At, ev.User, ev.Completed)
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert transfer order lines: %w", err)
	}
	return nil
}

func (r *TransferOrderRepo) loadChildren(ctx context.Context, o *entity.TransferOrder) error {
	rows, err := r.q.Query(ctx, `
		SELECT line_no, COALESCE(product_id, 0), name, barcode, quantity, measurement, picked
		FROM transfer_order_items WHERE order_id = $1 ORDER BY line_no`, o.ID)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	o.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.TransferOrderItem, error) {
		var it entity.TransferOrderItem
		err := row.Scan(&it.ID, &it.ProductID, &it.Name, &it.Barcode, &it.Quantity, &it.Measurement, &it.Picked)
		return it, err
	})
	if err != nil {
		return fmt.Errorf("scan order item: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT event, at, user_name, completed
		FROM transfer_order_events WHERE order_id = $1 ORDER BY position`, o.ID)
	if err != nil {
		return fmt.Errorf("list order events: %w", err)
	}
	o.Timeline, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.OrderEvent, error) {
		var ev entity.OrderEvent
		err := row.Scan(&ev.Event, &ev.At, &ev.User, &ev.Completed)
		return ev, err
	})
	if err != nil {
		return fmt.Errorf("scan order event: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (entity.TransferOrder, error) {
	var o entity.TransferOrder
	err := row.Scan(&o.ID, &o.Status, &o.Store, &o.Destination, &o.CreatedBy, &o.AssignedTo, &o.CreatedAt)
	return o, err
}
