package order

import (
	"fmt"
	"sync"

	"github.com/TemirB/bytebazaar/internal/domain"
)

// History is the append-only record of placed orders for the process lifetime.
// Orders are exposed newest-first.
type History struct {
	mu     sync.RWMutex
	orders []domain.Order // oldest-first
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(o domain.Order) {
	h.mu.Lock()
	h.orders = append(h.orders, o.Clone())
	h.mu.Unlock()
}

// All returns copies of every order, newest first.
func (h *History) All() []domain.Order {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.Order, 0, len(h.orders))
	for i := len(h.orders) - 1; i >= 0; i-- {
		out = append(out, h.orders[i].Clone())
	}
	return out
}

func (h *History) Latest() (domain.Order, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.orders) == 0 {
		return domain.Order{}, false
	}
	return h.orders[len(h.orders)-1].Clone(), true
}

func (h *History) Get(id string) (domain.Order, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for i := len(h.orders) - 1; i >= 0; i-- {
		if h.orders[i].ID == id {
			return h.orders[i].Clone(), nil
		}
	}
	return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, id)
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.orders)
}
