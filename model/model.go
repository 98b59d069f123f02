// Package model holds the per-core registry of proxies.
//
// Each core key owns exactly one Model, obtained with GetInstance:
//
//	m := model.GetInstance("app")
//	m.RegisterProxy(patterns.NewProxy("colors", []string{"red", "green", "blue"}))
//	p, ok := m.RetrieveProxy("colors")
package model

import (
	"sort"
	"sync"

	"github.com/tailored-agentic-units/puremvc/core/lifecycle"
	"github.com/tailored-agentic-units/puremvc/core/multiton"
	"github.com/tailored-agentic-units/puremvc/observability"
)

// Proxy is a named holder of application data.
//
// A Proxy may additionally implement lifecycle.Notifier to receive its core
// key, and lifecycle.Registrant / lifecycle.Remover to react to registration.
type Proxy interface {
	Name() string
	Data() any
}

// Model maps proxy names to proxies for one core.
type Model struct {
	key     string
	proxies map[string]Proxy
	mu      sync.RWMutex
	events  *observability.Emitter
}

var instances = multiton.NewRegistry[*Model]()

// GetInstance returns the Model for key, creating it on first use. Options
// apply only when the Model is created.
func GetInstance(key string, opts ...observability.Option) *Model {
	return instances.GetInstance(key, func(key string) *Model {
		return newModel(key, opts...)
	})
}

// Has reports whether a Model exists for key.
func Has(key string) bool {
	return instances.Has(key)
}

// Remove discards the Model for key and drops its proxies. Proxies are not
// notified.
func Remove(key string) {
	if m, ok := instances.Remove(key); ok {
		m.mu.Lock()
		clear(m.proxies)
		m.mu.Unlock()
	}
}

func newModel(key string, opts ...observability.Option) *Model {
	return &Model{
		key:     key,
		proxies: make(map[string]Proxy),
		events:  observability.NewEmitter("model", key, opts...),
	}
}

// Key returns the core key this Model belongs to.
func (m *Model) Key() string {
	return m.key
}

// RegisterProxy stores proxy under its name, replacing any proxy already
// registered under that name, then calls its OnRegister hook.
func (m *Model) RegisterProxy(proxy Proxy) {
	name := proxy.Name()
	lifecycle.Initialize(proxy, m.key)

	m.mu.Lock()
	m.proxies[name] = proxy
	m.mu.Unlock()

	m.events.Emit(EventProxyRegistered, observability.LevelVerbose, map[string]any{
		"proxy": name,
	})

	lifecycle.Registered(proxy)
}

// RetrieveProxy returns the proxy registered under name.
func (m *Model) RetrieveProxy(name string) (Proxy, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.proxies[name]
	return p, exists
}

// HasProxy reports whether a proxy is registered under name.
func (m *Model) HasProxy(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.proxies[name]
	return exists
}

// RemoveProxy unregisters the proxy under name and calls its OnRemove hook.
func (m *Model) RemoveProxy(name string) (Proxy, bool) {
	m.mu.Lock()
	p, exists := m.proxies[name]
	delete(m.proxies, name)
	m.mu.Unlock()

	if !exists {
		return nil, false
	}

	m.events.Emit(EventProxyRemoved, observability.LevelVerbose, map[string]any{
		"proxy": name,
	})

	lifecycle.Removed(p)
	return p, true
}

// ListProxyNames returns the registered proxy names, sorted.
func (m *Model) ListProxyNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.proxies))
	for name := range m.proxies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
