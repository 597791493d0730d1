package cache

import (
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Registry keeps the most recently used sessions keyed by an opaque id. When it
// is full the least recently used session is evicted.
type Registry[T any] struct {
	mu     sync.Mutex
	size   int
	lru    *lru.Cache[string, T]
	create func() T
}

func New[T any](size int, create func() T) (*Registry[T], error) {
	c, err := lru.New[string, T](size)
	if err != nil {
		return nil, err
	}
	return &Registry[T]{
		size:   size,
		lru:    c,
		create: create,
	}, nil
}

// GetOrCreate returns the session stored under id. Unknown, evicted or
// malformed ids get a fresh session under a newly generated id, so callers must
// use the returned id from then on.
func (r *Registry[T]) GetOrCreate(id string) (string, T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := uuid.Parse(id); err == nil {
		if v, ok := r.lru.Get(id); ok {
			return id, v, false
		}
	}

	id = uuid.NewString()
	v := r.create()
	r.lru.Add(id, v)
	return id, v, true
}

func (r *Registry[T]) Get(id string) (T, bool) {
	return r.lru.Get(id)
}

func (r *Registry[T]) Len() int {
	return r.lru.Len()
}

func (r *Registry[T]) Cap() int {
	return r.size
}
