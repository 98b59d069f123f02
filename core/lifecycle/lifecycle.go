// Package lifecycle declares the optional capabilities a proxy, mediator or
// command can implement to take part in registration with a core. Components
// probe for these with type assertions, so collaborators implement only the
// hooks they need.
package lifecycle

// Notifier is implemented by collaborators that need their core key before
// they can send notifications.
type Notifier interface {
	InitializeNotifier(key string)
}

// Registrant is implemented by collaborators that react to being registered.
type Registrant interface {
	OnRegister()
}

// Remover is implemented by collaborators that react to being removed.
type Remover interface {
	OnRemove()
}

// Initialize assigns key to v if v implements Notifier.
func Initialize(v any, key string) {
	if n, ok := v.(Notifier); ok {
		n.InitializeNotifier(key)
	}
}

// Registered invokes OnRegister on v if implemented.
func Registered(v any) {
	if r, ok := v.(Registrant); ok {
		r.OnRegister()
	}
}

// Removed invokes OnRemove on v if implemented.
func Removed(v any) {
	if r, ok := v.(Remover); ok {
		r.OnRemove()
	}
}
