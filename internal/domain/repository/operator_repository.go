package repository

import (
	"context"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// OperatorRepository define el puerto de persistencia para Operator (DIP).
type OperatorRepository interface {
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Operator, error)
	List(ctx context.Context) ([]entity.Operator, error)
}
