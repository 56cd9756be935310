package repository

import (
	"context"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// LocationRepository puerto para tiendas de origen y destinos de traslado.
type LocationRepository interface {
	List(ctx context.Context) ([]entity.Location, error)
	// GetByName devuelve (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.Location, error)
}
