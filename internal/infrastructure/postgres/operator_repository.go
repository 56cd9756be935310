package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

// OperatorRepo operadores con su hash bcrypt del PIN.
type OperatorRepo struct {
	q Querier
}

func NewOperatorRepository(q Querier) *OperatorRepo {
	return &OperatorRepo{q: q}
}

func (r *OperatorRepo) GetByID(ctx context.Context, id string) (*entity.Operator, error) {
	var op entity.Operator
	err := r.q.QueryRow(ctx, `SELECT id, name, store, pin_hash FROM operators WHERE id = $1`, id).
		Scan(&op.ID, &op.Name, &op.Store, &op.PINHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator: %w", err)
	}
	return &op, nil
}

func (r *OperatorRepo) List(ctx context.Context) ([]entity.Operator, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, store, pin_hash FROM operators ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	defer rows.Close()

	var list []entity.Operator
	for rows.Next() {
		var op entity.Operator
		if err := rows.Scan(&op.ID, &op.Name, &op.Store, &op.PINHash); err != nil {
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		list = append(list, op)
	}
	return list, rows.Err()
}
