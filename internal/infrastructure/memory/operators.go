package memory

import (
	"context"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

// OperatorRepo operadores fijos.
type OperatorRepo struct {
	operators []entity.Operator
}

func NewOperatorRepository(operators []entity.Operator) *OperatorRepo {
	return &OperatorRepo{operators: append([]entity.Operator(nil), operators...)}
}

func (r *OperatorRepo) GetByID(ctx context.Context, id string) (*entity.Operator, error) {
	for _, op := range r.operators {
		if op.ID == id {
			found := op
			return &found, nil
		}
	}
	return nil, nil
}

func (r *OperatorRepo) List(ctx context.Context) ([]entity.Operator, error) {
	return append([]entity.Operator(nil), r.operators...), nil
}
