package viewmodel

import (
	"context"
	"sync"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

// Collection holds one fetched resource list together with its
// loading/error state. Every Load carries a generation token: a fetch that
// finishes after a newer Load or Mutate has started is stale and must not
// overwrite the newer state.
type Collection[T any] struct {
	mu       sync.Mutex
	gen      uint64
	state    State
	items    []T
	err      error
	loadedAt time.Time
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

// Load runs fetch outside the lock and commits the result only if no newer
// Load or Mutate started in the meantime. The fetched slice is returned to
// the caller either way; a stale result is simply not committed.
func (c *Collection[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	c.gen++
	token := c.gen
	c.state = StateLoading
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.gen {
		return items, err
	}
	if err != nil {
		c.state = StateFailed
		c.err = err
		return nil, err
	}
	c.state = StateReady
	c.items = items
	c.err = nil
	c.loadedAt = time.Now()
	return items, nil
}

// Mutate applies a local reconciliation to the held slice and invalidates
// any in-flight Load.
func (c *Collection[T]) Mutate(patch func([]T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.items = patch(c.items)
	if c.state == StateIdle {
		c.state = StateReady
	}
	c.loadedAt = time.Now()
}

// Replace installs an authoritative slice, invalidating in-flight Loads.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = StateReady
	c.items = items
	c.err = nil
	c.loadedAt = time.Now()
}

// Items returns a copy of the held slice.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Snapshot returns the held slice when it is ready and younger than maxAge.
// A non-positive maxAge never matches.
func (c *Collection[T]) Snapshot(maxAge time.Duration) ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if maxAge <= 0 || c.state != StateReady || time.Since(c.loadedAt) > maxAge {
		return nil, false
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, true
}

func (c *Collection[T]) State() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.err
}

func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = StateIdle
	c.items = nil
	c.err = nil
}
