// Package notification defines the message value broadcast through a core.
package notification

import "fmt"

// Notification is a named message delivered synchronously to every observer
// registered for Name. Body is owned by the sender; the framework never
// retains a Notification after delivery returns.
type Notification struct {
	Name string
	Body any
	Type string
}

// New creates a Notification. Body and typ may be zero.
func New(name string, body any, typ string) *Notification {
	return &Notification{
		Name: name,
		Body: body,
		Type: typ,
	}
}

func (n *Notification) String() string {
	body := "nil"
	if n.Body != nil {
		body = fmt.Sprintf("%v", n.Body)
	}
	typ := n.Type
	if typ == "" {
		typ = "nil"
	}
	return fmt.Sprintf("Notification{Name: %s, Body: %s, Type: %s}", n.Name, body, typ)
}
