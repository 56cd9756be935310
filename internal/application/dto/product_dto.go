package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Measurement  string          `json:"measurement"`
	Stock        decimal.Decimal `json:"stock"`
	Store        string          `json:"store"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Status       string          `json:"status"` // normal, low, critical
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
