package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerQuery filtros de GET /api/ledger.
type LedgerQuery struct {
	Query  string `query:"q"`
	Store  string `query:"store"`  // "all" o tienda de origen
	Period string `query:"period"` // today, week, month, all
}

// TransactionResponse asiento del libro.
type TransactionResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Product     string          `json:"product"`
	Quantity    decimal.Decimal `json:"quantity"`
	Measurement string          `json:"measurement"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Timestamp   time.Time       `json:"timestamp"`
	User        string          `json:"user"`
	Cost        decimal.Decimal `json:"cost"`
	Status      string          `json:"status"`
}

// LedgerTotals totales del listado filtrado. Quantities agrupa por unidad (kg y L no se suman).
type LedgerTotals struct {
	Count      int                        `json:"count"`
	TotalCost  decimal.Decimal            `json:"total_cost"`
	Quantities map[string]decimal.Decimal `json:"quantities"`
}

// LedgerResponse salida de GET /api/ledger.
type LedgerResponse struct {
	Period string                `json:"period"`
	Store  string                `json:"store"`
	Items  []TransactionResponse `json:"items"`
	Totals LedgerTotals          `json:"totals"`
}
