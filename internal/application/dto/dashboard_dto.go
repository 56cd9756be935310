package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalStock       decimal.Decimal    `json:"total_stock"` // suma de stock en tiendas, unidades mezcladas
	StockValue       decimal.Decimal    `json:"stock_value"` // stock valorizado a costo unitario
	PendingTransfers int                `json:"pending_transfers"`
	TransferredToday int                `json:"transferred_today"` // asientos del libro del día
	LowStockAlerts   int                `json:"low_stock_alerts"`  // low + critical
	RecentActivity   []ActivityResponse `json:"recent_activity"`
	Date             time.Time          `json:"date"`
	DateLabel        string             `json:"date_label"` // ej: "20 de Enero 2026"
}

// ActivityResponse actividad reciente (últimas órdenes).
type ActivityResponse struct {
	OrderID string    `json:"order_id"`
	Action  string    `json:"action"`  // Transfer Pending, Transfer In Progress, Transfer Completed
	Summary string    `json:"summary"` // ej: "Tomatoes (5kg)"
	From    string    `json:"from"`
	To      string    `json:"to"`
	At      time.Time `json:"at"`
	Status  string    `json:"status"`
}
