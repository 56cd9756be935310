// Package catalog casos de uso de lectura sobre el catálogo: resolución de códigos de barras,
// listados por tienda e inventario con estado de stock.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

// Resolver traduce un código escaneado o tipeado a un producto.
// Busca sobre el catálogo completo, sin filtrar por tienda: el listado de traslados sí filtra.
type Resolver struct {
	catalog repository.CatalogRepository
}

// NewResolver construye el resolver.
func NewResolver(catalog repository.CatalogRepository) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve devuelve el producto con ese barcode exacto.
// Sin coincidencia: domain.ErrNotFound (estado informativo, no falla). Barcode vacío: ErrInvalidInput.
// El texto no se normaliza más allá de quitar espacios en los extremos.
func (r *Resolver) Resolve(ctx context.Context, barcode string) (*entity.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := r.catalog.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("resolve barcode: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
