package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
	"github.com/jhoicas/stockbridge-api/pkg/textmatch"
)

// StoreAll valor de filtro que incluye todas las tiendas.
const StoreAll = "all"

// UseCase listados del catálogo e inventario de tienda.
type UseCase struct {
	catalog   repository.CatalogRepository
	locations repository.LocationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalog repository.CatalogRepository, locations repository.LocationRepository) *UseCase {
	return &UseCase{catalog: catalog, locations: locations}
}

// ListProducts productos de una tienda, o de todas si store es vacío o "all".
func (uc *UseCase) ListProducts(ctx context.Context, store string) (*dto.ProductListResponse, error) {
	list, err := uc.list(ctx, store)
	if err != nil {
		return nil, err
	}
	items := toProductResponses(list)
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Inventory listado de inventario: filtro por tienda y búsqueda por nombre (sin tildes ni mayúsculas)
// o por barcode (subcadena). Incluye conteos por estado de stock.
func (uc *UseCase) Inventory(ctx context.Context, store, query string) (*dto.InventoryResponse, error) {
	list, err := uc.list(ctx, store)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	out := &dto.InventoryResponse{Store: normalizeStore(store), Query: query, Items: []dto.ProductResponse{}}
	for _, p := range list {
		if !MatchesProduct(p, query) {
			continue
		}
		switch p.StockStatus() {
		case entity.StockStatusCritical:
			out.Counts.Critical++
		case entity.StockStatusLow:
			out.Counts.Low++
		default:
			out.Counts.Normal++
		}
		out.Items = append(out.Items, ToProductResponse(p))
	}
	return out, nil
}

// Locations tiendas y destinos conocidos.
func (uc *UseCase) Locations(ctx context.Context) (*dto.LocationListResponse, error) {
	list, err := uc.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.LocationListResponse{Stores: []dto.LocationResponse{}, Destinations: []dto.LocationResponse{}}
	for _, l := range list {
		r := dto.LocationResponse{ID: l.ID, Name: l.Name, Kind: l.Kind}
		if l.Kind == entity.LocationKindStore {
			out.Stores = append(out.Stores, r)
		} else {
			out.Destinations = append(out.Destinations, r)
		}
	}
	return out, nil
}

func (uc *UseCase) list(ctx context.Context, store string) ([]entity.Product, error) {
	if normalizeStore(store) == StoreAll {
		return uc.catalog.ListAll(ctx)
	}
	return uc.catalog.ListByStore(ctx, store)
}

func normalizeStore(store string) string {
	if store == "" || store == StoreAll {
		return StoreAll
	}
	return store
}

// MatchesProduct búsqueda de productos: nombre sin tildes ni mayúsculas, o barcode como subcadena.
func MatchesProduct(p entity.Product, query string) bool {
	if query == "" {
		return true
	}
	return textmatch.Contains(p.Name, query) || strings.Contains(p.Barcode, query)
}
