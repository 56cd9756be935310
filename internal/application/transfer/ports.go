package transfer

import (
	"context"

	"github.com/jhoicas/stockbridge-api/internal/domain/transfer"
)

// OrderRecorder registra un envío en el tablero de órdenes. Opcional: sin recorder el envío
// solo vacía el carrito.
type OrderRecorder interface {
	Record(ctx context.Context, sub transfer.Submission) (orderID string, err error)
}
