package service

import (
	"context"
	"errors"

	"github.com/TemirB/bytebazaar/internal/cart"
	"github.com/TemirB/bytebazaar/internal/domain"
	"github.com/TemirB/bytebazaar/internal/observability"
	"github.com/TemirB/bytebazaar/internal/order"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

var ErrCheckoutPending = errors.New("a checkout is already in progress")

type Catalog interface {
	ByID(id string) (domain.Product, error)
}

type Placer interface {
	PlaceOrder(ctx context.Context, req order.Request) (*order.Task, error)
}

type Notifier interface {
	OrderPlaced(o domain.Order)
}

// Service holds what all sessions share and hands out new sessions.
type Service struct {
	catalog  Catalog
	placer   Placer
	notifier Notifier
	taxRate  decimal.Decimal
	logger   *zap.Logger
	metrics  observability.Metrics
}

func NewService(catalog Catalog, placer Placer, notifier Notifier, taxRate decimal.Decimal, logger *zap.Logger, metrics observability.Metrics) *Service {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Service{
		catalog:  catalog,
		placer:   placer,
		notifier: notifier,
		taxRate:  taxRate,
		logger:   logger,
		metrics:  metrics,
	}
}

func (s *Service) NewSession() *Session {
	return &Session{
		svc:    s,
		ledger: cart.NewLedger(),
	}
}
