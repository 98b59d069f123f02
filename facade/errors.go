package facade

import "errors"

// Sentinel errors for core lifecycle.
var (
	ErrCoreExists            = errors.New("facade instance for this multiton key already constructed")
	ErrNotifierUninitialized = errors.New("multiton key for this notifier not yet initialized")
)
