// Package orders casos de uso del tablero de órdenes de traslado: listado, detalle, registro
// de envíos y documentos de despacho.
package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/inventory"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
	"github.com/jhoicas/stockbridge-api/internal/domain/transfer"
	"github.com/jhoicas/stockbridge-api/pkg/logger"
)

// StatusAll valor de filtro que incluye todos los estados.
const StatusAll = "all"

// Eventos del timeline que se crean al registrar una orden.
const (
	EventCreated  = "Order Created"
	EventPicked   = "Items Picked"
	EventComplete = "Transfer Complete"
)

// UseCase tablero de órdenes.
type UseCase struct {
	orders   repository.TransferOrderRepository
	catalog  repository.CatalogRepository
	tx       TxRunner
	slip     SlipRenderer
	manifest ManifestBuilder
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orders repository.TransferOrderRepository,
	catalog repository.CatalogRepository,
	tx TxRunner,
	slip SlipRenderer,
	manifest ManifestBuilder,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		orders:   orders,
		catalog:  catalog,
		tx:       tx,
		slip:     slip,
		manifest: manifest,
		log:      log.Component("orders"),
	}
}

// List órdenes filtradas por estado ("all" o vacío = todas), de la más reciente a la más antigua.
func (uc *UseCase) List(ctx context.Context, status string) (*dto.OrderListResponse, error) {
	filter := status
	if status == "" || status == StatusAll {
		status, filter = StatusAll, ""
	} else if !entity.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	list, err := uc.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := &dto.OrderListResponse{Status: status, Items: make([]dto.OrderSummaryResponse, 0, len(list))}
	for _, o := range list {
		out.Items = append(out.Items, toSummary(o))
	}
	return out, nil
}

// Get detalle de una orden con progreso y timeline.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.OrderDetailResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	timeline := make([]dto.OrderEventResponse, 0, len(o.Timeline))
	for _, ev := range o.Timeline {
		timeline = append(timeline, dto.OrderEventResponse{Event: ev.Event, At: ev.At, User: ev.User, Completed: ev.Completed})
	}
	return &dto.OrderDetailResponse{
		OrderSummaryResponse: toSummary(*o),
		PickedCount:          o.PickedCount(),
		Progress:             o.Progress(),
		Timeline:             timeline,
	}, nil
}

// Record registra un envío como orden pendiente y agrega sus asientos al libro,
// todo en una transacción. Devuelve el ID de la orden (ORD-NNN).
func (uc *UseCase) Record(ctx context.Context, sub transfer.Submission) (string, error) {
	if len(sub.Lines) == 0 {
		return "", domain.ErrEmptyCart
	}
	costs, err := uc.unitCosts(ctx)
	if err != nil {
		return "", err
	}
	operator := sub.Operator
	if operator == "" {
		operator = "anonymous"
	}
	at := sub.SubmittedAt
	var orderID string
	err = uc.tx.Run(ctx, func(orderRepo repository.TransferOrderRepository, txRepo repository.TransactionRepository) error {
		id, err := orderRepo.NextID(ctx)
		if err != nil {
			return fmt.Errorf("next order id: %w", err)
		}
		order := &entity.TransferOrder{
			ID:          id,
			Status:      entity.OrderStatusPending,
			Store:       sub.Store,
			Destination: sub.Destination,
			CreatedBy:   operator,
			CreatedAt:   at,
			Timeline: []entity.OrderEvent{
				{Event: EventCreated, At: &at, User: operator, Completed: true},
				{Event: EventPicked, User: "-"},
				{Event: EventComplete, User: "-"},
			},
		}
		entries := make([]entity.Transaction, 0, len(sub.Lines))
		for i, l := range sub.Lines {
			qty := decimal.NewFromInt(int64(l.Quantity))
			order.Items = append(order.Items, entity.TransferOrderItem{
				ID:          int64(i + 1),
				ProductID:   l.ProductID,
				Name:        l.Name,
				Barcode:     l.Barcode,
				Quantity:    qty,
				Measurement: l.Measurement,
			})
			trxID, err := txRepo.NextID(ctx)
			if err != nil {
				return fmt.Errorf("next transaction id: %w", err)
			}
			entries = append(entries, entity.Transaction{
				ID:          trxID,
				OrderID:     id,
				Product:     l.Name,
				Quantity:    qty,
				Measurement: l.Measurement,
				From:        sub.Store,
				To:          sub.Destination,
				Timestamp:   at,
				User:        operator,
				Cost:        inventory.TransferCost(qty, costs[l.ProductID]),
				Status:      entity.OrderStatusPending,
			})
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := txRepo.Append(ctx, entries...); err != nil {
			return fmt.Errorf("append ledger: %w", err)
		}
		orderID = id
		return nil
	})
	if err != nil {
		return "", err
	}
	uc.log.Info().Str("order_id", orderID).Str("store", sub.Store).Str("destination", sub.Destination).Int("items", len(sub.Lines)).Msg("orden registrada")
	return orderID, nil
}

// Slip PDF de la hoja de traslado.
func (uc *UseCase) Slip(ctx context.Context, id string) ([]byte, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.slip.RenderSlip(ctx, *o)
}

// Manifest XML de despacho valorizado y su digest.
func (uc *UseCase) Manifest(ctx context.Context, id string) ([]byte, string, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	costs, err := uc.unitCosts(ctx)
	if err != nil {
		return nil, "", err
	}
	m := Manifest{Order: *o, TotalCost: decimal.Zero}
	for _, it := range o.Items {
		unit := costs[it.ProductID]
		cost := inventory.TransferCost(it.Quantity, unit)
		m.Lines = append(m.Lines, ManifestLine{Item: it, UnitCost: unit, Cost: cost})
		m.TotalCost = m.TotalCost.Add(cost)
	}
	return uc.manifest.BuildManifest(ctx, m)
}

func (uc *UseCase) get(ctx context.Context, id string) (*entity.TransferOrder, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (uc *UseCase) unitCosts(ctx context.Context) (map[int64]decimal.Decimal, error) {
	products, err := uc.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	costs := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		costs[p.ID] = p.UnitCost
	}
	return costs, nil
}

func toSummary(o entity.TransferOrder) dto.OrderSummaryResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Name:        it.Name,
			Barcode:     it.Barcode,
			Quantity:    it.Quantity,
			Measurement: it.Measurement,
			Picked:      it.Picked,
		})
	}
	return dto.OrderSummaryResponse{
		ID:          o.ID,
		Status:      o.Status,
		Store:       o.Store,
		Destination: o.Destination,
		CreatedBy:   o.CreatedBy,
		AssignedTo:  o.AssignedTo,
		CreatedAt:   o.CreatedAt,
		ItemCount:   len(o.Items),
		Items:       items,
	}
}
