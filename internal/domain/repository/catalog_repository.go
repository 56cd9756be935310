package repository

import (
	"context"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// CatalogRepository puerto de solo lectura sobre el catálogo de productos (DIP).
// Hoy lo sirven los datos mock en memoria; PostgreSQL es el reemplazo persistente.
//
// FindByBarcode compara por igualdad exacta y devuelve la primera coincidencia. Se asume que
// el barcode es único dentro del catálogo; si no lo fuera, el resultado depende del orden
// de ListAll. Devuelve (nil, nil) cuando no hay coincidencia.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
	ListByStore(ctx context.Context, store string) ([]entity.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
