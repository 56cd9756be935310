package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockbridge-api/internal/application/orders"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las escrituras sobre el tablero y el libro en memoria.
// No hay rollback: una escritura previa al error queda aplicada.
type TxRunner struct {
	mu     sync.Mutex
	orders *TransferOrderRepo
	txs    *TransactionRepo
}

func NewTxRunner(orders *TransferOrderRepo, txs *TransactionRepo) *TxRunner {
	return &TxRunner{orders: orders, txs: txs}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.TransferOrderRepository,
	txRepo repository.TransactionRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.orders, r.txs)
}
