package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

const productColumns = `id, barcode, name, measurement, stock, store, reorder_point, unit_cost, updated_at`

// CatalogRepo catálogo sobre la tabla products. barcode tiene índice único.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *CatalogRepo) ListByStore(ctx context.Context, store string) ([]entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE store = $1 ORDER BY id`, store)
}

func (r *CatalogRepo) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	return r.one(ctx, `SELECT `+productColumns+` FROM products WHERE barcode = $1`, barcode)
}

func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.one(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

func (r *CatalogRepo) list(ctx context.Context, query string, args ...any) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) one(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Barcode, &p.Name, &p.Measurement, &p.Stock, &p.Store,
		&p.ReorderPoint, &p.UnitCost, &p.UpdatedAt)
	return p, err
}
