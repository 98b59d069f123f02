// Package facade is the single entry point to a core. A Facade composes the
// Model, View and Controller registered for one multiton key and exposes
// their operations together with notification sending.
//
// Cores are created lazily by key and live until RemoveCore:
//
//	f := facade.GetInstance("app")
//	f.RegisterProxy(patterns.NewProxy("colors", []string{"red", "green", "blue"}))
//	f.RegisterCommand("Startup", func() controller.Command { return &StartupCommand{} })
//	err := f.SendNotification("Startup", nil, "")
//
// The legacy single-core usage is the core under DefaultKey, see Default.
package facade

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/puremvc/controller"
	"github.com/tailored-agentic-units/puremvc/core/multiton"
	"github.com/tailored-agentic-units/puremvc/core/notification"
	"github.com/tailored-agentic-units/puremvc/model"
	"github.com/tailored-agentic-units/puremvc/observability"
	"github.com/tailored-agentic-units/puremvc/view"
)

// DefaultKey is the core key used by Default.
const DefaultKey = "PureMVC"

// Facade fronts the Model, View and Controller of one core.
type Facade struct {
	key        string
	model      *model.Model
	view       *view.View
	controller *controller.Controller
	events     *observability.Emitter
}

var instances = multiton.NewRegistry[*Facade]()

// GetInstance returns the Facade for key, creating the core on first use.
// Components already created for key are reused. Options apply only to
// instances created by this call.
func GetInstance(key string, opts ...observability.Option) *Facade {
	var built bool
	f := instances.GetInstance(key, func(key string) *Facade {
		built = true
		return newFacade(key, opts...)
	})
	if built {
		f.events.Emit(EventCoreCreated, observability.LevelInfo, nil)
	}
	return f
}

// New creates the Facade for key and fails with ErrCoreExists if one is
// already registered.
func New(key string, opts ...observability.Option) (*Facade, error) {
	if instances.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrCoreExists, key)
	}

	f := newFacade(key, opts...)
	if err := instances.Register(key, f); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCoreExists, key)
	}
	f.events.Emit(EventCoreCreated, observability.LevelInfo, nil)
	return f, nil
}

// NewCore creates a core under a freshly generated key.
func NewCore(opts ...observability.Option) *Facade {
	return GetInstance(uuid.Must(uuid.NewV7()).String(), opts...)
}

// Default returns the core registered under DefaultKey.
func Default() *Facade {
	return GetInstance(DefaultKey)
}

// HasCore reports whether a Facade exists for key.
func HasCore(key string) bool {
	return instances.Has(key)
}

// ListCores returns the keys of every live core, sorted.
func ListCores() []string {
	return instances.Keys()
}

// RemoveCore discards the Model, View, Controller and Facade for key.
// Registered proxies and mediators are dropped without their OnRemove hooks.
func RemoveCore(key string) {
	f, exists := instances.Remove(key)

	model.Remove(key)
	controller.Remove(key)
	view.Remove(key)

	if exists {
		f.events.Emit(EventCoreRemoved, observability.LevelInfo, nil)
	}
}

func newFacade(key string, opts ...observability.Option) *Facade {
	return &Facade{
		key:        key,
		model:      model.GetInstance(key, opts...),
		view:       view.GetInstance(key, opts...),
		controller: controller.GetInstance(key, opts...),
		events:     observability.NewEmitter("facade", key, opts...),
	}
}

// Key returns the multiton key of the core.
func (f *Facade) Key() string {
	return f.key
}

// Model returns the core's Model.
func (f *Facade) Model() *model.Model {
	return f.model
}

// View returns the core's View.
func (f *Facade) View() *view.View {
	return f.view
}

// Controller returns the core's Controller.
func (f *Facade) Controller() *controller.Controller {
	return f.controller
}

// RegisterCommand maps name to factory. See controller.Controller.RegisterCommand.
func (f *Facade) RegisterCommand(name string, factory controller.Factory) {
	f.controller.RegisterCommand(name, factory)
}

// RemoveCommand drops the command mapped to name.
func (f *Facade) RemoveCommand(name string) bool {
	return f.controller.RemoveCommand(name)
}

// HasCommand reports whether a command is mapped to name.
func (f *Facade) HasCommand(name string) bool {
	return f.controller.HasCommand(name)
}

// RegisterProxy registers proxy with the Model.
func (f *Facade) RegisterProxy(proxy model.Proxy) {
	f.model.RegisterProxy(proxy)
}

// RetrieveProxy returns the proxy registered under name.
func (f *Facade) RetrieveProxy(name string) (model.Proxy, bool) {
	return f.model.RetrieveProxy(name)
}

// RemoveProxy unregisters the proxy under name.
func (f *Facade) RemoveProxy(name string) (model.Proxy, bool) {
	return f.model.RemoveProxy(name)
}

// HasProxy reports whether a proxy is registered under name.
func (f *Facade) HasProxy(name string) bool {
	return f.model.HasProxy(name)
}

// RegisterMediator registers mediator with the View.
func (f *Facade) RegisterMediator(mediator view.Mediator) {
	f.view.RegisterMediator(mediator)
}

// RetrieveMediator returns the mediator registered under name.
func (f *Facade) RetrieveMediator(name string) (view.Mediator, bool) {
	return f.view.RetrieveMediator(name)
}

// RemoveMediator unregisters the mediator under name.
func (f *Facade) RemoveMediator(name string) (view.Mediator, bool) {
	return f.view.RemoveMediator(name)
}

// HasMediator reports whether a mediator is registered under name.
func (f *Facade) HasMediator(name string) bool {
	return f.view.HasMediator(name)
}

// SendNotification builds a notification and delivers it to the core's
// observers. body and typ may be zero.
func (f *Facade) SendNotification(name string, body any, typ string) error {
	return f.NotifyObservers(notification.New(name, body, typ))
}

// NotifyObservers delivers n to the core's observers.
func (f *Facade) NotifyObservers(n *notification.Notification) error {
	return f.view.NotifyObservers(n)
}
