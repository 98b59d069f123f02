package observer

import (
	"slices"
	"sort"
	"sync"

	"github.com/tailored-agentic-units/puremvc/core/notification"
)

// Bus holds, per notification name, the ordered list of observers and
// delivers notifications to them synchronously on the caller's goroutine.
type Bus struct {
	observers map[string][]*Observer
	mu        sync.RWMutex
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		observers: make(map[string][]*Observer),
	}
}

// RegisterObserver appends observer to the list for name. The same context
// may be registered more than once; each registration is delivered to.
func (b *Bus) RegisterObserver(name string, observer *Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.observers[name] = append(b.observers[name], observer)
}

// NotifyObservers delivers n to a snapshot of the observers registered for
// n.Name, in registration order. Changes made to the registrations by a
// callback take effect from the next notification. The first callback error
// aborts delivery and is returned.
func (b *Bus) NotifyObservers(n *notification.Notification) error {
	b.mu.RLock()
	snapshot := slices.Clone(b.observers[n.Name])
	b.mu.RUnlock()

	for _, o := range snapshot {
		if err := o.NotifyObserver(n); err != nil {
			return err
		}
	}
	return nil
}

// RemoveObserver removes the first observer for name whose context equals
// context. The list for name is dropped once empty.
func (b *Bus) RemoveObserver(name string, context any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, exists := b.observers[name]
	if !exists {
		return
	}

	for i, o := range list {
		if o.CompareNotifyContext(context) {
			list = slices.Delete(list, i, i+1)
			break
		}
	}

	if len(list) == 0 {
		delete(b.observers, name)
		return
	}
	b.observers[name] = list
}

// HasObservers reports whether any observer is registered for name.
func (b *Bus) HasObservers(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, exists := b.observers[name]
	return exists
}

// Count returns the number of observers registered for name.
func (b *Bus) Count(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.observers[name])
}

// Names returns the notification names that have observers, sorted.
func (b *Bus) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.observers))
	for name := range b.observers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear drops every registration.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.observers)
}
