package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo libro de trazabilidad en memoria (solo se agregan asientos).
type TransactionRepo struct {
	mu  sync.RWMutex
	txs []entity.Transaction
	seq int
}

func NewTransactionRepository(txs []entity.Transaction) *TransactionRepo {
	r := &TransactionRepo{txs: append([]entity.Transaction(nil), txs...)}
	for _, t := range txs {
		var n int
		if _, err := fmt.Sscanf(t.ID, "TRX-%d", &n); err == nil && n > r.seq {
			r.seq = n
		}
	}
	return r
}

// List filtra por origen y ventana de tiempo [Since, Until) y ordena del más reciente al más antiguo.
// A igual timestamp se conserva el orden del libro.
func (r *TransactionRepo) List(ctx context.Context, filter repository.TransactionFilter) ([]entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Transaction
	for _, t := range r.txs {
		if filter.From != "" && t.From != filter.From {
			continue
		}
		if filter.Since != nil && t.Timestamp.Before(*filter.Since) {
			continue
		}
		if filter.Until != nil && !t.Timestamp.Before(*filter.Until) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *TransactionRepo) Append(ctx context.Context, txs ...entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = append(r.txs, txs...)
	return nil
}

func (r *TransactionRepo) NextID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("TRX-%03d", r.seq), nil
}
