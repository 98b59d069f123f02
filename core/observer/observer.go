// Package observer provides the observer registration type and the Bus that
// fans notifications out to observers registered by name.
package observer

import (
	"reflect"

	"github.com/tailored-agentic-units/puremvc/core/notification"
)

// Callback receives a notification. Returning an error stops delivery of the
// current notification to any remaining observers.
type Callback func(n *notification.Notification) error

// Observer pairs a callback with the object that owns it. The context is only
// used to find the registration again on removal.
type Observer struct {
	callback Callback
	context  any
}

// New creates an Observer bound to callback and owned by context.
func New(callback Callback, context any) *Observer {
	return &Observer{
		callback: callback,
		context:  context,
	}
}

// Context returns the owning object.
func (o *Observer) Context() any {
	return o.context
}

// NotifyObserver invokes the callback with n.
func (o *Observer) NotifyObserver(n *notification.Notification) error {
	if o.callback == nil {
		return nil
	}
	return o.callback(n)
}

// CompareNotifyContext reports whether context equals the owning object.
// Contexts whose dynamic values cannot be compared, including structs holding
// a slice or map in an interface field, never match.
func (o *Observer) CompareNotifyContext(context any) bool {
	if o.context == nil || context == nil {
		return o.context == context
	}
	a, b := reflect.ValueOf(o.context), reflect.ValueOf(context)
	if a.Type() != b.Type() || !a.Comparable() || !b.Comparable() {
		return false
	}
	return o.context == context
}
