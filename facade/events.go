package facade

import "github.com/tailored-agentic-units/puremvc/observability"

// Core lifecycle event types.
const (
	EventCoreCreated observability.EventType = "core.created"
	EventCoreRemoved observability.EventType = "core.removed"
)
