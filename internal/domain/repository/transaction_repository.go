package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// TransactionFilter criterios del libro de trazabilidad. Campos vacíos no filtran.
type TransactionFilter struct {
	From  string     // tienda de origen
	Since *time.Time // inclusive
	Until *time.Time // exclusivo
}

// TransactionRepository puerto del libro de trazabilidad (movimientos tienda → destino).
type TransactionRepository interface {
	// List devuelve los asientos del más reciente al más antiguo.
	List(ctx context.Context, filter TransactionFilter) ([]entity.Transaction, error)
	// NextID reserva el siguiente identificador TRX-NNN.
	NextID(ctx context.Context) (string, error)
	Append(ctx context.Context, txs ...entity.Transaction) error
}
