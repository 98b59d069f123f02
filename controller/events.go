package controller

import "github.com/tailored-agentic-units/puremvc/observability"

// Controller event types.
const (
	EventCommandRegistered observability.EventType = "command.registered"
	EventCommandRemoved    observability.EventType = "command.removed"
	EventCommandFailed     observability.EventType = "command.failed"
)
