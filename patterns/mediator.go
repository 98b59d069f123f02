package patterns

import (
	"github.com/tailored-agentic-units/puremvc/core/notification"
	"github.com/tailored-agentic-units/puremvc/facade"
)

// MediatorName is the name used by NewMediator when none is given.
const MediatorName = "Mediator"

// Mediator binds a view component to a core. The base declares no interests;
// embed it and override ListNotificationInterests and HandleNotification.
type Mediator struct {
	facade.Notifier

	name      string
	component any
}

// NewMediator creates a Mediator for component under name.
func NewMediator(name string, component any) *Mediator {
	if name == "" {
		name = MediatorName
	}
	return &Mediator{
		name:      name,
		component: component,
	}
}

func (m *Mediator) Name() string {
	return m.name
}

// ViewComponent returns the mediated component.
func (m *Mediator) ViewComponent() any {
	return m.component
}

// SetViewComponent replaces the mediated component.
func (m *Mediator) SetViewComponent(component any) {
	m.component = component
}

func (m *Mediator) ListNotificationInterests() []string {
	return nil
}

func (m *Mediator) HandleNotification(n *notification.Notification) {}

// OnRegister is called by the View after registration.
func (m *Mediator) OnRegister() {}

// OnRemove is called by the View after removal.
func (m *Mediator) OnRemove() {}
