package facade

import "fmt"

// Notifier gives proxies, mediators and commands access to their core.
// Embed it; the framework assigns the key through InitializeNotifier while
// registering or executing the collaborator.
type Notifier struct {
	key string
}

// InitializeNotifier binds the notifier to the core under key.
func (n *Notifier) InitializeNotifier(key string) {
	n.key = key
}

// MultitonKey returns the bound core key, empty before initialization.
func (n *Notifier) MultitonKey() string {
	return n.key
}

// Facade returns the Facade of the bound core.
func (n *Notifier) Facade() (*Facade, error) {
	if n.key == "" {
		return nil, ErrNotifierUninitialized
	}
	return GetInstance(n.key), nil
}

// SendNotification sends a notification through the bound core.
func (n *Notifier) SendNotification(name string, body any, typ string) error {
	f, err := n.Facade()
	if err != nil {
		return fmt.Errorf("send %s: %w", name, err)
	}
	return f.SendNotification(name, body, typ)
}
