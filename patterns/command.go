package patterns

import (
	"fmt"
	"slices"

	"github.com/tailored-agentic-units/puremvc/controller"
	"github.com/tailored-agentic-units/puremvc/core/lifecycle"
	"github.com/tailored-agentic-units/puremvc/core/notification"
	"github.com/tailored-agentic-units/puremvc/facade"
)

// SimpleCommand is the base for hand-written commands. Embed it and define
// Execute.
type SimpleCommand struct {
	facade.Notifier
}

// Execute does nothing.
func (c *SimpleCommand) Execute(n *notification.Notification) error {
	return nil
}

// DelegateCommand executes a function.
type DelegateCommand struct {
	facade.Notifier

	action func(n *notification.Notification) error
}

// NewDelegateCommand creates a DelegateCommand running action.
func NewDelegateCommand(action func(n *notification.Notification) error) *DelegateCommand {
	return &DelegateCommand{action: action}
}

func (c *DelegateCommand) Execute(n *notification.Notification) error {
	if c.action == nil {
		return nil
	}
	return c.action(n)
}

// Delegate returns a Factory building a DelegateCommand for action.
func Delegate(action func(n *notification.Notification) error) controller.Factory {
	return func() controller.Command {
		return NewDelegateCommand(action)
	}
}

// MacroCommand executes an ordered list of sub-commands. The list is fixed
// at construction; each Execute builds every sub-command afresh, so a
// MacroCommand may be executed any number of times, concurrently.
type MacroCommand struct {
	facade.Notifier

	subCommands []controller.Factory
}

// NewMacroCommand creates a MacroCommand running factories in order.
func NewMacroCommand(factories ...controller.Factory) *MacroCommand {
	return &MacroCommand{subCommands: slices.Clone(factories)}
}

// Macro returns a Factory building a MacroCommand over factories.
func Macro(factories ...controller.Factory) controller.Factory {
	return func() controller.Command {
		return NewMacroCommand(factories...)
	}
}

// SubCommands returns a copy of the sub-command factories.
func (c *MacroCommand) SubCommands() []controller.Factory {
	return slices.Clone(c.subCommands)
}

// Execute runs each sub-command with n, initialized with the macro's key.
// The first failing sub-command stops the sequence.
func (c *MacroCommand) Execute(n *notification.Notification) error {
	for i, factory := range c.subCommands {
		if factory == nil {
			continue
		}
		cmd := factory()
		if cmd == nil {
			continue
		}
		lifecycle.Initialize(cmd, c.MultitonKey())
		if err := cmd.Execute(n); err != nil {
			return fmt.Errorf("sub-command %d: %w", i, err)
		}
	}
	return nil
}
