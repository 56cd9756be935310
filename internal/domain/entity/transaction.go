package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction asiento del libro de trazabilidad: un producto movido de una tienda a un destino.
type Transaction struct {
	ID          string
	OrderID     string
	Product     string
	Quantity    decimal.Decimal
	Measurement string
	From        string
	To          string
	Timestamp   time.Time
	User        string
	Cost        decimal.Decimal
	Status      string
}
