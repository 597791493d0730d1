package service

import (
	"context"
	"sync"
	"time"

	"github.com/TemirB/bytebazaar/internal/cart"
	"github.com/TemirB/bytebazaar/internal/domain"
	"github.com/TemirB/bytebazaar/internal/observability"
	"github.com/TemirB/bytebazaar/internal/order"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Session is one shopper: a cart, a pending flag guarding checkout and the
// last order the shopper placed. All methods are safe for concurrent use.
//
// While a checkout is pending the cart is frozen, so the order that clears it
// is exactly the cart that was submitted.
type Session struct {
	svc *Service

	mu      sync.Mutex
	ledger  *cart.Ledger
	pending bool
	last    *domain.Order
}

func (s *Session) Add(productID string) (cart.Change, error) {
	p, err := s.svc.catalog.ByID(productID)
	if err != nil {
		return cart.Change{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return cart.Change{}, ErrCheckoutPending
	}
	ch, err := s.ledger.Add(p)
	if err != nil {
		return ch, err
	}
	s.mutated(cart.OpAdd, ch)
	return ch, nil
}

func (s *Session) SetQuantity(productID string, quantity int) (cart.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return cart.Change{}, ErrCheckoutPending
	}
	ch, err := s.ledger.SetQuantity(productID, quantity)
	if err != nil {
		return ch, err
	}
	s.mutated(cart.OpSetQuantity, ch)
	return ch, nil
}

// Remove reports whether the product was in the cart.
func (s *Session) Remove(productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return false, ErrCheckoutPending
	}
	ok := s.ledger.Remove(productID)
	if ok {
		s.svc.metrics.IncCartMutation(cart.OpRemove)
	}
	return ok, nil
}

func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrCheckoutPending
	}
	s.ledger.Clear()
	s.svc.metrics.IncCartMutation(cart.OpClear)
	return nil
}

func (s *Session) mutated(op string, ch cart.Change) {
	s.svc.metrics.IncCartMutation(op)
	if ch.Clamped {
		s.svc.logger.Debug("Quantity capped at stock",
			zap.String("product_id", ch.ProductID),
			zap.Int("stock", ch.Stock),
		)
	}
}

// Cart returns the current cart with a live price summary.
func (s *Session) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartView{
		Lines:     s.ledger.Lines(),
		ItemCount: s.ledger.TotalItemCount(),
		Summary:   s.ledger.Summary(s.svc.taxRate),
		Pending:   s.pending,
	}
}

func (s *Session) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TotalItemCount()
}

// LastOrder is the most recent order placed through this session.
func (s *Session) LastOrder() (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return domain.Order{}, false
	}
	return s.last.Clone(), true
}

func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Checkout submits the cart as an order. clientPrices are the prices the client
// claims for each product; they travel with the request but never affect the
// order. A second call while the first is unresolved fails with
// ErrCheckoutPending. By the time the returned task resolves successfully the
// cart is empty and LastOrder reports the new order.
func (s *Session) Checkout(ctx context.Context, customer domain.Customer, clientPrices map[string]decimal.Decimal) (*order.Task, error) {
	start := time.Now()

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		s.svc.metrics.ObserveCheckout(observability.OutcomePending, convertToMs(start))
		return nil, ErrCheckoutPending
	}
	lines := requestLines(s.ledger.CartLines(), clientPrices)
	s.pending = true
	s.mu.Unlock()

	task, err := s.svc.placer.PlaceOrder(ctx, order.Request{
		Customer: customer,
		Lines:    lines,
		OnPlaced: func(o domain.Order) { s.placed(o, start) },
		OnFailed: func(err error) { s.failed(err, start) },
	})
	if err != nil {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()

		s.svc.metrics.ObserveCheckout(observability.OutcomeInvalid, convertToMs(start))
		s.svc.logger.Info("Checkout rejected", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (s *Session) placed(o domain.Order, start time.Time) {
	s.mu.Lock()
	s.ledger.Clear()
	s.last = &o
	s.pending = false
	s.mu.Unlock()

	st := CheckoutStats{OrderID: o.ID, TotalMs: convertToMs(start)}
	s.svc.metrics.ObserveCheckout(observability.OutcomePlaced, st.TotalMs)
	s.svc.logger.Info("Checkout completed",
		zap.String("order_id", st.OrderID),
		zap.Float64("total_ms", st.TotalMs),
	)

	if s.svc.notifier != nil {
		s.svc.notifier.OrderPlaced(o)
	}
}

func (s *Session) failed(err error, start time.Time) {
	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()

	s.svc.metrics.ObserveCheckout(observability.OutcomeFailed, convertToMs(start))
	s.svc.logger.Warn("Checkout failed", zap.Error(err))
}

func requestLines(lines []domain.CartLine, clientPrices map[string]decimal.Decimal) []order.RequestLine {
	out := make([]order.RequestLine, len(lines))
	for i, l := range lines {
		out[i] = order.RequestLine{ProductID: l.ProductID, Quantity: l.Quantity}
		if p, ok := clientPrices[l.ProductID]; ok {
			out[i].ClientPrice = &p
		}
	}
	return out
}
