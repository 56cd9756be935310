package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock que muestra el inventario de tienda.
const (
	StockStatusNormal   = "normal"
	StockStatusLow      = "low"
	StockStatusCritical = "critical"
)

// Product representa un producto del catálogo ubicado en una tienda.
// Barcode es único dentro del catálogo (invariante asumido, no verificado en memoria).
type Product struct {
	ID           int64
	Barcode      string
	Name         string
	Measurement  string          // unidad: kg, L, ...
	Stock        decimal.Decimal // granularidad mixta (kg vs L)
	Store        string
	ReorderPoint decimal.Decimal
	UnitCost     decimal.Decimal
	UpdatedAt    time.Time
}

// StockStatus clasifica el stock contra el punto de reorden:
// critical si stock <= reorden/2, low si stock <= reorden, normal en otro caso.
// Sin punto de reorden el producto siempre es normal.
func (p Product) StockStatus() string {
	if !p.ReorderPoint.IsPositive() {
		return StockStatusNormal
	}
	half := p.ReorderPoint.Div(decimal.NewFromInt(2))
	switch {
	case p.Stock.LessThanOrEqual(half):
		return StockStatusCritical
	case p.Stock.LessThanOrEqual(p.ReorderPoint):
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}
