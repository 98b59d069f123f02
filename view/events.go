package view

import "github.com/tailored-agentic-units/puremvc/observability"

// View event types.
const (
	EventMediatorRegistered observability.EventType = "mediator.registered"
	EventMediatorRemoved    observability.EventType = "mediator.removed"
	EventNotificationSent   observability.EventType = "notification.sent"
)
