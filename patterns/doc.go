// Package patterns provides embeddable building blocks for the collaborators
// a core hosts: Proxy, Mediator, SimpleCommand, DelegateCommand and
// MacroCommand. Each embeds facade.Notifier so it can reach its core once
// registered.
//
// Application types embed a base and override what they need:
//
//	type ColorsMediator struct {
//	    *patterns.Mediator
//	}
//
//	func (m *ColorsMediator) ListNotificationInterests() []string {
//	    return []string{"ColorsChanged"}
//	}
//
//	func (m *ColorsMediator) HandleNotification(n *notification.Notification) {
//	    // update the view component
//	}
package patterns
