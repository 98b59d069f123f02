package patterns

import (
	"sync"

	"github.com/tailored-agentic-units/puremvc/facade"
)

// ProxyName is the name used by NewProxy when none is given.
const ProxyName = "Proxy"

// Proxy holds a named piece of application data.
type Proxy struct {
	facade.Notifier

	name string
	data any
	mu   sync.RWMutex
}

// NewProxy creates a Proxy holding data under name.
func NewProxy(name string, data any) *Proxy {
	if name == "" {
		name = ProxyName
	}
	return &Proxy{
		name: name,
		data: data,
	}
}

func (p *Proxy) Name() string {
	return p.name
}

func (p *Proxy) Data() any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data
}

// SetData replaces the held data.
func (p *Proxy) SetData(data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = data
}

// OnRegister is called by the Model after registration.
func (p *Proxy) OnRegister() {}

// OnRemove is called by the Model after removal.
func (p *Proxy) OnRemove() {}
