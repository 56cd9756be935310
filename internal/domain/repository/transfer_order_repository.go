package repository

import (
	"context"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// TransferOrderRepository puerto del tablero de órdenes de traslado.
type TransferOrderRepository interface {
	// List devuelve las órdenes de la más reciente a la más antigua; status vacío = todas.
	List(ctx context.Context, status string) ([]entity.TransferOrder, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.TransferOrder, error)
	// NextID reserva el siguiente identificador ORD-NNN.
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, order *entity.TransferOrder) error
}
