package order

import (
	"context"
	"sync"

	"github.com/TemirB/bytebazaar/internal/domain"
)

// Task is a pending order placement. It resolves exactly once, either to an
// order or to an error.
type Task struct {
	once  sync.Once
	done  chan struct{}
	order domain.Order
	err   error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func (t *Task) resolve(o domain.Order, err error) {
	t.once.Do(func() {
		if err == nil {
			t.order = o
		}
		t.err = err
		close(t.done)
	})
}

// Done is closed once the task has resolved.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task resolves or ctx ends. Ending ctx does not stop
// the placement itself.
func (t *Task) Wait(ctx context.Context) (domain.Order, error) {
	select {
	case <-t.done:
		return t.order, t.err
	case <-ctx.Done():
		return domain.Order{}, ctx.Err()
	}
}

// Result reports the outcome without blocking; ok is false while pending.
func (t *Task) Result() (o domain.Order, err error, ok bool) {
	select {
	case <-t.done:
		return t.order, t.err, true
	default:
		return domain.Order{}, nil, false
	}
}
