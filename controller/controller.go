// Package controller maps notification names to commands for one core.
//
// The first command registered for a name wires the Controller into the
// core's View as an observer of that name; every matching notification then
// builds a fresh command from the registered Factory and executes it.
package controller

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tailored-agentic-units/puremvc/core/lifecycle"
	"github.com/tailored-agentic-units/puremvc/core/multiton"
	"github.com/tailored-agentic-units/puremvc/core/notification"
	"github.com/tailored-agentic-units/puremvc/core/observer"
	"github.com/tailored-agentic-units/puremvc/observability"
	"github.com/tailored-agentic-units/puremvc/view"
)

// Command handles a notification. A Command may implement
// lifecycle.Notifier to receive its core key before Execute is called.
type Command interface {
	Execute(n *notification.Notification) error
}

// Factory produces the command to run for one notification.
type Factory func() Command

// Instance returns a Factory that always yields cmd.
func Instance(cmd Command) Factory {
	return func() Command { return cmd }
}

// Controller maps notification names to command factories for one core.
type Controller struct {
	key      string
	view     *view.View
	commands map[string]Factory
	mu       sync.RWMutex
	events   *observability.Emitter
}

var instances = multiton.NewRegistry[*Controller]()

// GetInstance returns the Controller for key, creating it (and the View for
// key, if needed) on first use. Options apply only to instances created by
// this call.
func GetInstance(key string, opts ...observability.Option) *Controller {
	return instances.GetInstance(key, func(key string) *Controller {
		return newController(key, view.GetInstance(key, opts...), opts...)
	})
}

// Has reports whether a Controller exists for key.
func Has(key string) bool {
	return instances.Has(key)
}

// Remove discards the Controller for key, drops its command mappings and
// stops it observing the View.
func Remove(key string) {
	if c, ok := instances.Remove(key); ok {
		c.mu.Lock()
		for name := range c.commands {
			c.view.RemoveObserver(name, c)
		}
		clear(c.commands)
		c.mu.Unlock()
	}
}

func newController(key string, v *view.View, opts ...observability.Option) *Controller {
	return &Controller{
		key:      key,
		view:     v,
		commands: make(map[string]Factory),
		events:   observability.NewEmitter("controller", key, opts...),
	}
}

// Key returns the core key this Controller belongs to.
func (c *Controller) Key() string {
	return c.key
}

// RegisterCommand maps name to factory, replacing any existing mapping. The
// Controller observes name on the View from the first registration only.
func (c *Controller) RegisterCommand(name string, factory Factory) {
	c.mu.Lock()
	if _, exists := c.commands[name]; !exists {
		c.view.RegisterObserver(name, observer.New(c.ExecuteCommand, c))
	}
	c.commands[name] = factory
	c.mu.Unlock()

	c.events.Emit(EventCommandRegistered, observability.LevelVerbose, map[string]any{
		"notification": name,
	})
}

// ExecuteCommand runs the command registered for n.Name. A notification
// without a registered command is ignored.
func (c *Controller) ExecuteCommand(n *notification.Notification) error {
	c.mu.RLock()
	factory, exists := c.commands[n.Name]
	c.mu.RUnlock()

	if !exists || factory == nil {
		return nil
	}

	cmd := factory()
	if cmd == nil {
		return nil
	}
	lifecycle.Initialize(cmd, c.key)

	if err := cmd.Execute(n); err != nil {
		c.events.Emit(EventCommandFailed, observability.LevelError, map[string]any{
			"notification": n.Name,
			"error":        err.Error(),
		})
		return fmt.Errorf("command for %s failed: %w", n.Name, err)
	}
	return nil
}

// HasCommand reports whether a command is registered for name.
func (c *Controller) HasCommand(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.commands[name]
	return exists
}

// RemoveCommand drops the mapping for name and stops observing it. Reports
// whether a mapping existed.
func (c *Controller) RemoveCommand(name string) bool {
	c.mu.Lock()
	_, exists := c.commands[name]
	if exists {
		c.view.RemoveObserver(name, c)
		delete(c.commands, name)
	}
	c.mu.Unlock()

	if exists {
		c.events.Emit(EventCommandRemoved, observability.LevelVerbose, map[string]any{
			"notification": name,
		})
	}
	return exists
}

// ListNotificationNames returns the names with a registered command, sorted.
func (c *Controller) ListNotificationNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
