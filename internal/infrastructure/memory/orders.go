package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
)

var _ repository.TransferOrderRepository = (*TransferOrderRepo)(nil)

// TransferOrderRepo tablero de órdenes en memoria.
type TransferOrderRepo struct {
	mu     sync.RWMutex
	orders []entity.TransferOrder
	seq    int
}

// NewTransferOrderRepository construye el tablero; la secuencia continúa tras las órdenes dadas.
func NewTransferOrderRepository(orders []entity.TransferOrder) *TransferOrderRepo {
	r := &TransferOrderRepo{}
	for _, o := range orders {
		r.orders = append(r.orders, cloneOrder(o))
		var n int
		if _, err := fmt.Sscanf(o.ID, "ORD-%d", &n); err == nil && n > r.seq {
			r.seq = n
		}
	}
	return r
}

func cloneOrder(o entity.TransferOrder) entity.TransferOrder {
	o.Items = append([]entity.TransferOrderItem(nil), o.Items...)
	o.Timeline = append([]entity.OrderEvent(nil), o.Timeline...)
	return o
}

func (r *TransferOrderRepo) List(ctx context.Context, status string) ([]entity.TransferOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.TransferOrder
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, cloneOrder(o))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *TransferOrderRepo) GetByID(ctx context.Context, id string) (*entity.TransferOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			found := cloneOrder(o)
			return &found, nil
		}
	}
	return nil, nil
}

func (r *TransferOrderRepo) NextID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("ORD-%03d", r.seq), nil
}

func (r *TransferOrderRepo) Create(ctx context.Context, order *entity.TransferOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == order.ID {
			return domain.ErrDuplicate
		}
	}
	r.orders = append(r.orders, cloneOrder(*order))
	return nil
}
