package catalog

import (
	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// ToProductResponse mapea un producto con su estado de stock.
func ToProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Barcode:      p.Barcode,
		Name:         p.Name,
		Measurement:  p.Measurement,
		Stock:        p.Stock,
		Store:        p.Store,
		ReorderPoint: p.ReorderPoint,
		UnitCost:     p.UnitCost,
		Status:       p.StockStatus(),
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(list []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
