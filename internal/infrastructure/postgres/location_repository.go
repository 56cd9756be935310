package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo tiendas y destinos (tabla locations).
type LocationRepo struct {
	q Querier
}

func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// List tiendas primero, luego destinos, cada grupo en orden de alta.
func (r *LocationRepo) List(ctx context.Context) ([]entity.Location, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, kind FROM locations
		ORDER BY CASE kind WHEN 'store' THEN 0 ELSE 1 END, position`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Kind); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *LocationRepo) GetByName(ctx context.Context, name string) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(ctx, `SELECT id, name, kind FROM locations WHERE name = $1`, name).
		Scan(&l.ID, &l.Name, &l.Kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}
