// Package multiton provides a key-partitioned store holding at most one
// instance of a component per core key.
package multiton

import (
	"fmt"
	"sort"
	"sync"
)

type slot[T any] struct {
	once  sync.Once
	ready chan struct{}
	value T
}

func newSlot[T any]() *slot[T] {
	return &slot[T]{ready: make(chan struct{})}
}

func (s *slot[T]) fill(build func() T) {
	s.once.Do(func() {
		defer close(s.ready)
		s.value = build()
	})
}

// wait blocks until the slot's construction has finished.
func (s *slot[T]) wait() T {
	<-s.ready
	return s.value
}

// Registry maps core keys to lazily constructed instances. Construction for
// a key happens at most once; concurrent first callers block until the
// winning construction completes and then observe the same instance.
type Registry[T any] struct {
	slots map[string]*slot[T]
	mu    sync.Mutex
}

// NewRegistry creates an empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		slots: make(map[string]*slot[T]),
	}
}

// GetInstance returns the instance stored for key, calling factory to build
// it if key holds no instance yet. The factory runs without the registry lock held, so
// it may resolve instances for other keys or from other registries, but it
// must not call GetInstance on this registry for the same key.
func (r *Registry[T]) GetInstance(key string, factory func(key string) T) T {
	r.mu.Lock()
	s, exists := r.slots[key]
	if !exists {
		s = newSlot[T]()
		r.slots[key] = s
	}
	r.mu.Unlock()

	s.fill(func() T { return factory(key) })
	return s.wait()
}

// Register stores instance under key. Returns ErrInstanceExists when the key
// already holds an instance or one is under construction.
func (r *Registry[T]) Register(key string, instance T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.slots[key]; exists {
		return fmt.Errorf("%w: %s", ErrInstanceExists, key)
	}

	s := newSlot[T]()
	s.fill(func() T { return instance })
	r.slots[key] = s
	return nil
}

// Get returns the instance for key without constructing one. If another
// caller is constructing the instance, Get waits for it.
func (r *Registry[T]) Get(key string) (T, bool) {
	r.mu.Lock()
	s, exists := r.slots[key]
	r.mu.Unlock()

	if !exists {
		var zero T
		return zero, false
	}

	return s.wait(), true
}

// Has reports whether key holds a slot.
func (r *Registry[T]) Has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.slots[key]
	return exists
}

// Remove deletes the slot for key and returns the instance it held. A later
// GetInstance for key constructs a new instance.
func (r *Registry[T]) Remove(key string) (T, bool) {
	r.mu.Lock()
	s, exists := r.slots[key]
	delete(r.slots, key)
	r.mu.Unlock()

	if !exists {
		var zero T
		return zero, false
	}

	return s.wait(), true
}

// Keys returns every key holding a slot, sorted.
func (r *Registry[T]) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.slots))
	for key := range r.slots {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
