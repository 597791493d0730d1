package notify

import (
	"context"
	"errors"
	"time"

	"github.com/TemirB/bytebazaar/internal/config"
	"github.com/TemirB/bytebazaar/internal/domain"
	"github.com/TemirB/bytebazaar/internal/observability"
	"github.com/TemirB/bytebazaar/internal/pkg/pool"
	"github.com/TemirB/bytebazaar/internal/pkg/retry"

	"go.uber.org/zap"
)

//go:generate mockgen -source internal/notify/dispatcher.go -destination=internal/notify/dispatcher_mock_test.go -package=notify

var ErrCircuitOpen = errors.New("circuit breaker open")

type brk interface {
	Allow() error
	Success()
	Failure()
}

// Dispatcher publishes placed orders off the checkout path. A failed publish is
// logged and counted; it never affects the order itself.
type Dispatcher struct {
	publisher   Publisher
	breaker     brk
	retryPolicy config.Retry
	pool        *pool.Pool
	logger      *zap.Logger
	metrics     observability.Metrics
	timeout     time.Duration
}

func NewDispatcher(publisher Publisher, breaker brk, retryPolicy config.Retry, workers int, logger *zap.Logger, metrics observability.Metrics) *Dispatcher {
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &Dispatcher{
		publisher:   publisher,
		breaker:     breaker,
		retryPolicy: retryPolicy,
		pool:        pool.New(workers),
		logger:      logger,
		metrics:     metrics,
		timeout:     10 * time.Second,
	}
}

// OrderPlaced queues a notification for o without waiting. When every worker
// is busy and the queue is full the notification is dropped.
func (d *Dispatcher) OrderPlaced(o domain.Order) {
	ev := NewOrderPlaced(o)
	if err := d.pool.TrySubmit(func() { _ = d.publish(context.Background(), ev) }); err != nil {
		d.logger.Warn("notification dropped", zap.String("order_id", ev.OrderID), zap.Error(err))
		d.metrics.ObserveNotify(false, 0)
	}
}

func (d *Dispatcher) publish(ctx context.Context, ev OrderPlaced) error {
	start := time.Now()
	if err := d.breaker.Allow(); err != nil {
		d.logger.Warn("circuit breaker is open, notification skipped",
			zap.String("order_id", ev.OrderID),
			zap.Error(err),
		)
		d.metrics.ObserveNotify(false, msSince(start))
		return ErrCircuitOpen
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := retry.Do(ctx, d.retryPolicy, func() error {
		return d.publisher.Publish(ctx, ev)
	}); err != nil {
		d.logger.Error("publish failed after retries",
			zap.String("order_id", ev.OrderID),
			zap.Error(err),
		)
		d.breaker.Failure()
		d.metrics.ObserveNotify(false, msSince(start))
		return err
	}

	d.breaker.Success()
	d.metrics.ObserveNotify(true, msSince(start))
	d.logger.Debug("order notification published", zap.String("order_id", ev.OrderID))
	return nil
}

// Close drains queued notifications and closes the publisher.
func (d *Dispatcher) Close() error {
	d.pool.Close()
	d.pool.Wait()
	return d.publisher.Close()
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
