package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse ítem de una orden.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id,omitempty"`
	Name        string          `json:"name"`
	Barcode     string          `json:"barcode,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Measurement string          `json:"measurement"`
	Picked      bool            `json:"picked"`
}

// OrderEventResponse hito del timeline. At nulo = pendiente.
type OrderEventResponse struct {
	Event     string     `json:"event"`
	At        *time.Time `json:"at"`
	User      string     `json:"user"`
	Completed bool       `json:"completed"`
}

// OrderSummaryResponse fila del tablero de órdenes.
type OrderSummaryResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Store       string              `json:"store"`
	Destination string              `json:"destination"`
	CreatedBy   string              `json:"created_by"`
	AssignedTo  string              `json:"assigned_to,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	ItemCount   int                 `json:"item_count"`
	Items       []OrderItemResponse `json:"items"`
}

// OrderDetailResponse detalle con progreso y timeline.
type OrderDetailResponse struct {
	OrderSummaryResponse
	PickedCount int                  `json:"picked_count"`
	Progress    decimal.Decimal      `json:"progress"` // porcentaje
	Timeline    []OrderEventResponse `json:"timeline"`
}

// OrderListResponse tablero filtrado.
type OrderListResponse struct {
	Status string                 `json:"status"`
	Items  []OrderSummaryResponse `json:"items"`
}
