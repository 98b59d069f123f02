package model

import "github.com/tailored-agentic-units/puremvc/observability"

// Model event types.
const (
	EventProxyRegistered observability.EventType = "proxy.registered"
	EventProxyRemoved    observability.EventType = "proxy.removed"
)
