package pool

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("pool is closed")
	ErrFull   = errors.New("pool queue is full")
)

// Pool runs submitted jobs on a fixed number of goroutines. Close stops
// accepting jobs; Wait blocks until queued jobs have drained.
type Pool struct {
	mu     sync.RWMutex
	jobs   chan func()
	wg     sync.WaitGroup
	closed bool
}

func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan func(), n*2),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.jobs {
		if f != nil {
			f()
		}
	}
}

// TrySubmit queues f only if there is room, returning ErrFull otherwise.
func (p *Pool) TrySubmit(f func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.jobs <- f:
		return nil
	default:
		return ErrFull
	}
}

func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
