package orders

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a ella.
// Garantiza que la orden y sus asientos del libro se registren juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.TransferOrderRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// SlipRenderer genera el PDF de la hoja de traslado (picking slip).
type SlipRenderer interface {
	RenderSlip(ctx context.Context, order entity.TransferOrder) ([]byte, error)
}

// ManifestBuilder genera el manifiesto XML de despacho y su digest canónico (hex SHA-256).
type ManifestBuilder interface {
	BuildManifest(ctx context.Context, m Manifest) (xml []byte, digest string, err error)
}

// Manifest datos del manifiesto: la orden valorizada a costo unitario.
type Manifest struct {
	Order     entity.TransferOrder
	Lines     []ManifestLine
	TotalCost decimal.Decimal
}

// ManifestLine ítem valorizado. UnitCost es cero si el ítem no está en el catálogo.
type ManifestLine struct {
	Item     entity.TransferOrderItem
	UnitCost decimal.Decimal
	Cost     decimal.Decimal
}
