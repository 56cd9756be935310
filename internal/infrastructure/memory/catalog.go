package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo catálogo de solo lectura sobre una lista fija de productos.
type CatalogRepo struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewCatalogRepository construye el catálogo. La lista se copia.
func NewCatalogRepository(products []entity.Product) *CatalogRepo {
	cp := make([]entity.Product, len(products))
	copy(cp, products)
	return &CatalogRepo{products: cp}
}

// ListAll devuelve todos los productos en orden de catálogo.
func (r *CatalogRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// ListByStore devuelve los productos ubicados en store.
func (r *CatalogRepo) ListByStore(ctx context.Context, store string) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Product
	for _, p := range r.products {
		if p.Store == store {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindByBarcode primera coincidencia exacta; (nil, nil) si no hay.
func (r *CatalogRepo) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Barcode == barcode {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}
