// Package analytics contiene el resumen del dashboard de traslados.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/inventory"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

const dashboardRecentActivity = 4 // órdenes en el widget de actividad reciente

// DashboardUseCase genera el resumen del día: stock en tiendas, traslados pendientes,
// movimientos del libro y alertas de stock bajo.
type DashboardUseCase struct {
	catalog repository.CatalogRepository
	orders  repository.TransferOrderRepository
	ledger  repository.TransactionRepository
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	catalog repository.CatalogRepository,
	orders repository.TransferOrderRepository,
	ledger repository.TransactionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{catalog: catalog, orders: orders, ledger: ledger, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo:
//  1. catálogo completo   → TotalStock, StockValue, LowStockAlerts
//  2. tablero de órdenes  → PendingTransfers, RecentActivity
//  3. libro del día       → TransferredToday
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// Hoy: [00:00, 00:00 del día siguiente)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	type productsResult struct {
		list []entity.Product
		err  error
	}
	type ordersResult struct {
		list []entity.TransferOrder
		err  error
	}
	type ledgerResult struct {
		list []entity.Transaction
		err  error
	}

	productsCh := make(chan productsResult, 1)
	ordersCh := make(chan ordersResult, 1)
	ledgerCh := make(chan ledgerResult, 1)

	go func() {
		list, err := uc.catalog.ListAll(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.orders.List(ctx, "")
		ordersCh <- ordersResult{list, err}
	}()
	go func() {
		list, err := uc.ledger.List(ctx, repository.TransactionFilter{Since: &todayStart, Until: &todayEnd})
		ledgerCh <- ledgerResult{list, err}
	}()

	products := <-productsCh
	orders := <-ordersCh
	today := <-ledgerCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes: %w", orders.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: libro del día: %w", today.err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalStock:       decimal.Zero,
		StockValue:       decimal.Zero,
		TransferredToday: len(today.list),
		RecentActivity:   []dto.ActivityResponse{},
		Date:             todayStart,
		DateLabel:        dayLabel(now),
	}
	for _, p := range products.list {
		out.TotalStock = out.TotalStock.Add(p.Stock)
		out.StockValue = out.StockValue.Add(inventory.StockValue(p.Stock, p.UnitCost))
		if p.StockStatus() != entity.StockStatusNormal {
			out.LowStockAlerts++
		}
	}
	for _, o := range orders.list {
		if o.Status == entity.OrderStatusPending {
			out.PendingTransfers++
		}
	}
	// orders.list viene de la más reciente a la más antigua.
	for i, o := range orders.list {
		if i == dashboardRecentActivity {
			break
		}
		out.RecentActivity = append(out.RecentActivity, activity(o))
	}
	return out, nil
}

func activity(o entity.TransferOrder) dto.ActivityResponse {
	action := "Transfer Pending"
	switch o.Status {
	case entity.OrderStatusInProgress:
		action = "Transfer In Progress"
	case entity.OrderStatusCompleted:
		action = "Transfer Completed"
	}
	summary := ""
	if len(o.Items) > 0 {
		first := o.Items[0]
		summary = fmt.Sprintf("%s (%s%s)", first.Name, first.Quantity.String(), first.Measurement)
		if extra := len(o.Items) - 1; extra > 0 {
			summary += fmt.Sprintf(" +%d", extra)
		}
	}
	return dto.ActivityResponse{
		OrderID: o.ID,
		Action:  action,
		Summary: summary,
		From:    o.Store,
		To:      o.Destination,
		At:      o.CreatedAt,
		Status:  o.Status,
	}
}

// dayLabel devuelve una etiqueta legible del día, ej: "20 de Enero 2026".
func dayLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%d de %s %d", t.Day(), months[t.Month()-1], t.Year())
}
