// Package view holds the per-core registry of mediators together with the
// notification bus that routes notifications to them.
//
// Registering a mediator wires one observer per notification name the
// mediator declares interest in; removing it unwires those observers:
//
//	v := view.GetInstance("app")
//	v.RegisterMediator(m)
//	err := v.NotifyObservers(notification.New("NOTE1", nil, ""))
package view

import (
	"slices"
	"sort"
	"sync"

	"github.com/tailored-agentic-units/puremvc/core/lifecycle"
	"github.com/tailored-agentic-units/puremvc/core/multiton"
	"github.com/tailored-agentic-units/puremvc/core/notification"
	"github.com/tailored-agentic-units/puremvc/core/observer"
	"github.com/tailored-agentic-units/puremvc/observability"
)

// Mediator is a named component that handles the notifications it lists as
// interests.
//
// A Mediator may additionally implement lifecycle.Notifier to receive its
// core key, and lifecycle.Registrant / lifecycle.Remover to react to
// registration.
type Mediator interface {
	Name() string
	ListNotificationInterests() []string
	HandleNotification(n *notification.Notification)
}

type registration struct {
	mediator  Mediator
	interests []string
}

// View maps mediator names to mediators for one core and owns its Bus.
type View struct {
	key       string
	bus       *observer.Bus
	mediators map[string]*registration
	mu        sync.RWMutex
	events    *observability.Emitter
}

var instances = multiton.NewRegistry[*View]()

// GetInstance returns the View for key, creating it on first use. Options
// apply only when the View is created.
func GetInstance(key string, opts ...observability.Option) *View {
	return instances.GetInstance(key, func(key string) *View {
		return newView(key, opts...)
	})
}

// Has reports whether a View exists for key.
func Has(key string) bool {
	return instances.Has(key)
}

// Remove discards the View for key, dropping its mediators and observers.
// Mediators are not notified.
func Remove(key string) {
	if v, ok := instances.Remove(key); ok {
		v.mu.Lock()
		clear(v.mediators)
		v.mu.Unlock()
		v.bus.Clear()
	}
}

func newView(key string, opts ...observability.Option) *View {
	return &View{
		key:       key,
		bus:       observer.NewBus(),
		mediators: make(map[string]*registration),
		events:    observability.NewEmitter("view", key, opts...),
	}
}

// Key returns the core key this View belongs to.
func (v *View) Key() string {
	return v.key
}

// RegisterObserver adds o to the observers notified for name.
func (v *View) RegisterObserver(name string, o *observer.Observer) {
	v.bus.RegisterObserver(name, o)
}

// RemoveObserver removes the first observer for name owned by context.
func (v *View) RemoveObserver(name string, context any) {
	v.bus.RemoveObserver(name, context)
}

// HasObservers reports whether any observer is registered for name.
func (v *View) HasObservers(name string) bool {
	return v.bus.HasObservers(name)
}

// NotifyObservers delivers n to every observer registered for n.Name.
func (v *View) NotifyObservers(n *notification.Notification) error {
	v.events.Emit(EventNotificationSent, observability.LevelVerbose, map[string]any{
		"notification": n.Name,
		"observers":    v.bus.Count(n.Name),
	})
	return v.bus.NotifyObservers(n)
}

// RegisterMediator registers mediator and wires an observer for each of its
// notification interests, then calls its OnRegister hook. A mediator whose
// name is already registered is ignored; remove the existing one first.
//
// The mediator receives its key and is asked for its interests before the
// View is locked, so both may call back into the View.
func (v *View) RegisterMediator(mediator Mediator) {
	name := mediator.Name()
	if v.HasMediator(name) {
		return
	}

	lifecycle.Initialize(mediator, v.key)

	reg := &registration{
		mediator:  mediator,
		interests: slices.Clone(mediator.ListNotificationInterests()),
	}
	if !v.store(name, reg) {
		return
	}

	v.events.Emit(EventMediatorRegistered, observability.LevelVerbose, map[string]any{
		"mediator":  name,
		"interests": reg.interests,
	})

	lifecycle.Registered(mediator)
}

// store inserts reg under name and wires its observers unless name was taken
// in the meantime. Observers are owned by reg, never by the mediator value.
func (v *View) store(name string, reg *registration) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.mediators[name]; exists {
		return false
	}
	v.mediators[name] = reg

	o := observer.New(func(n *notification.Notification) error {
		reg.mediator.HandleNotification(n)
		return nil
	}, reg)
	for _, interest := range reg.interests {
		v.bus.RegisterObserver(interest, o)
	}
	return true
}

// RetrieveMediator returns the mediator registered under name.
func (v *View) RetrieveMediator(name string) (Mediator, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	reg, exists := v.mediators[name]
	if !exists {
		return nil, false
	}
	return reg.mediator, true
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, exists := v.mediators[name]
	return exists
}

// RemoveMediator unregisters the mediator under name, removes the observers
// wired for the interests it declared at registration, and calls its
// OnRemove hook.
func (v *View) RemoveMediator(name string) (Mediator, bool) {
	reg, exists := v.take(name)
	if !exists {
		return nil, false
	}

	v.events.Emit(EventMediatorRemoved, observability.LevelVerbose, map[string]any{
		"mediator": name,
	})

	lifecycle.Removed(reg.mediator)
	return reg.mediator, true
}

func (v *View) take(name string) (*registration, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	reg, exists := v.mediators[name]
	if !exists {
		return nil, false
	}
	for _, interest := range reg.interests {
		v.bus.RemoveObserver(interest, reg)
	}
	delete(v.mediators, name)
	return reg, true
}

// ListMediatorNames returns the registered mediator names, sorted.
func (v *View) ListMediatorNames() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	names := make([]string, 0, len(v.mediators))
	for name := range v.mediators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
