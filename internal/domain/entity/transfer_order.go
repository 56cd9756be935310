package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de traslado (datos de visualización, sin máquina de estados).
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
)

// TransferOrder orden de traslado de tienda a cocina/food court.
type TransferOrder struct {
	ID          string
	Status      string
	Store       string
	Destination string
	CreatedBy   string
	AssignedTo  string
	CreatedAt   time.Time
	Items       []TransferOrderItem
	Timeline    []OrderEvent
}

// TransferOrderItem línea de una orden.
type TransferOrderItem struct {
	ID          int64
	ProductID   int64
	Name        string
	Barcode     string
	Quantity    decimal.Decimal
	Measurement string
	Picked      bool
}

// OrderEvent hito del timeline de la orden. At nil = pendiente.
type OrderEvent struct {
	Event     string
	At        *time.Time
	User      string
	Completed bool
}

// PickedCount cantidad de ítems ya recogidos.
func (o TransferOrder) PickedCount() int {
	n := 0
	for _, it := range o.Items {
		if it.Picked {
			n++
		}
	}
	return n
}

// Progress porcentaje de ítems recogidos (0 si la orden no tiene ítems).
func (o TransferOrder) Progress() decimal.Decimal {
	if len(o.Items) == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(o.PickedCount())).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(o.Items)))).
		Round(2)
}

// IsValidOrderStatus indica si s es un estado conocido.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}
