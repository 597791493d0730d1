package order

import (
	"context"
	"fmt"
	"time"

	"github.com/TemirB/bytebazaar/internal/domain"
	"github.com/TemirB/bytebazaar/internal/pricing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultDelay = 1500 * time.Millisecond

type RequestLine struct {
	ProductID string
	Quantity  int
	// ClientPrice is whatever price the client attached to the line. It is
	// never used for pricing.
	ClientPrice *decimal.Decimal
}

type Request struct {
	Customer domain.Customer
	Lines    []RequestLine
	// OnPlaced, when set, runs after the order is recorded and before the task
	// resolves.
	OnPlaced func(domain.Order)
	// OnFailed, when set, runs before the task resolves with a failure.
	OnFailed func(error)
}

type Config struct {
	TaxRate  decimal.Decimal
	Delay    time.Duration
	IDPrefix string
}

// Simulator stands in for the trusted server: it re-prices every line from the
// catalog and records the resulting order.
type Simulator struct {
	catalog domain.ProductReader
	history *History
	ids     *IDGenerator
	cfg     Config
	now     func() time.Time
	logger  *zap.Logger
}

type Option func(*Simulator)

// WithClock replaces time.Now for order ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

func NewSimulator(catalog domain.ProductReader, history *History, cfg Config, logger *zap.Logger, opts ...Option) *Simulator {
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = DefaultIDPrefix
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	s := &Simulator{
		catalog: catalog,
		history: history,
		ids:     NewIDGenerator(cfg.IDPrefix),
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// PlaceOrder validates req synchronously and returns a *domain.ValidationError
// without starting anything when it is invalid. Otherwise the placement runs in
// the background and the returned task resolves with the order or a
// *domain.SimulationFailure. Once started, a placement cannot be cancelled.
func (s *Simulator) PlaceOrder(_ context.Context, req Request) (*Task, error) {
	if err := validateLines(req.Lines); err != nil {
		return nil, err
	}
	customer, err := normalizeCustomer(req.Customer)
	if err != nil {
		return nil, err
	}

	req.Customer = customer
	req.Lines = append([]RequestLine(nil), req.Lines...)
	task := newTask()
	go s.run(task, req)
	return task, nil
}

func (s *Simulator) run(task *Task, req Request) {
	o, err := s.attempt(req)
	if err != nil {
		failure := &domain.SimulationFailure{Err: err}
		if req.OnFailed != nil {
			s.hook("failed", func() { req.OnFailed(failure) })
		}
		task.resolve(domain.Order{}, failure)
		return
	}

	s.history.Append(o)
	if req.OnPlaced != nil {
		s.hook("placed", func() { req.OnPlaced(o.Clone()) })
	}

	s.logger.Info("Order placed",
		zap.String("order_id", o.ID),
		zap.Int("lines", len(o.Lines)),
		zap.String("subtotal", o.Subtotal.String()),
		zap.String("tax", o.Tax.String()),
		zap.String("total", o.Total.String()),
	)
	task.resolve(o, nil)
}

// attempt waits out the delay and builds the order. A panic becomes an error;
// nothing is recorded until attempt has returned.
func (s *Simulator) attempt(req Request) (o domain.Order, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Order simulation panicked", zap.Any("panic", r))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if s.cfg.Delay > 0 {
		t := time.NewTimer(s.cfg.Delay)
		<-t.C
	}

	o, err = s.build(req.Customer, req.Lines)
	if err != nil {
		s.logger.Warn("Order rejected",
			zap.String("email", req.Customer.Email),
			zap.Error(err),
		)
	}
	return o, err
}

// hook runs a caller callback; its panic is logged and does not change the outcome.
func (s *Simulator) hook(name string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Order hook panicked", zap.String("hook", name), zap.Any("panic", r))
		}
	}()
	f()
}

func (s *Simulator) build(customer domain.Customer, lines []RequestLine) (domain.Order, error) {
	snapshots := make([]domain.OrderLine, 0, len(lines))
	priced := make([]pricing.Line, 0, len(lines))

	for _, l := range lines {
		p, err := s.catalog.ByID(l.ProductID)
		if err != nil {
			return domain.Order{}, err
		}
		if l.Quantity < 1 || l.Quantity > p.Stock {
			return domain.Order{}, fmt.Errorf("%w: %s wants %d, %d available", domain.ErrOutOfStock, p.ID, l.Quantity, p.Stock)
		}
		if l.ClientPrice != nil && !l.ClientPrice.Equal(p.Price) {
			s.logger.Warn("Client price ignored",
				zap.String("product_id", p.ID),
				zap.String("client_price", l.ClientPrice.String()),
				zap.String("catalog_price", p.Price.String()),
			)
		}

		snapshots = append(snapshots, domain.OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image(),
			UnitPrice: p.Price,
			Quantity:  l.Quantity,
		})
		priced = append(priced, pricing.Line{UnitPrice: p.Price, Quantity: l.Quantity})
	}

	sum := pricing.Calculate(priced, s.cfg.TaxRate)
	now := s.now()
	return domain.Order{
		ID:        s.ids.Next(now),
		Customer:  customer,
		Lines:     snapshots,
		Subtotal:  sum.Subtotal,
		Tax:       sum.Tax,
		Total:     sum.Total,
		CreatedAt: now.UTC(),
	}, nil
}
