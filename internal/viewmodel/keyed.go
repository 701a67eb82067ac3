package viewmodel

import "sync"

// Keyed maps a dependency key (the selected lab id, for instance) to its
// own Collection, so switching the dependency never mixes state between
// keys and each key keeps its own generation counter.
type Keyed[T any] struct {
	mu    sync.Mutex
	byKey map[string]*Collection[T]
}

func NewKeyed[T any]() *Keyed[T] {
	return &Keyed[T]{byKey: make(map[string]*Collection[T])}
}

func (k *Keyed[T]) For(key string) *Collection[T] {
	k.mu.Lock()
	defer k.mu.Unlock()
	col, ok := k.byKey[key]
	if !ok {
		col = NewCollection[T]()
		k.byKey[key] = col
	}
	return col
}

func (k *Keyed[T]) Drop(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.byKey, key)
}
