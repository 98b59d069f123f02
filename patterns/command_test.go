package patterns_test

import (
	"errors"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/tailored-agentic-units/puremvc/controller"
	"github.com/tailored-agentic-units/puremvc/core/notification"
	"github.com/tailored-agentic-units/puremvc/facade"
	"github.com/tailored-agentic-units/puremvc/patterns"
)

type macroVO struct {
	Input   int
	Result1 int
	Result2 int
}

type sub1Command struct {
	patterns.SimpleCommand
}

func (c *sub1Command) Execute(n *notification.Notification) error {
	vo := n.Body.(*macroVO)
	vo.Result1 = 2 * vo.Input
	return nil
}

type sub2Command struct {
	patterns.SimpleCommand
}

func (c *sub2Command) Execute(n *notification.Notification) error {
	vo := n.Body.(*macroVO)
	vo.Result2 = vo.Input * vo.Input
	return nil
}

func newSub1() controller.Command { return &sub1Command{} }
func newSub2() controller.Command { return &sub2Command{} }

func TestSimpleCommand_Execute(t *testing.T) {
	var cmd patterns.SimpleCommand
	if err := cmd.Execute(notification.New("Note", nil, "")); err != nil {
		t.Errorf("Execute() error = %v, want nil", err)
	}
}

func TestMacroCommand_Execute(t *testing.T) {
	macro := patterns.NewMacroCommand(newSub1, newSub2)
	vo := &macroVO{Input: 5}

	if err := macro.Execute(notification.New("MacroCommandTest", vo, "")); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if vo.Result1 != 10 {
		t.Errorf("Result1 = %d, want 10", vo.Result1)
	}
	if vo.Result2 != 25 {
		t.Errorf("Result2 = %d, want 25", vo.Result2)
	}
}

func TestMacroCommand_Reentrant(t *testing.T) {
	macro := patterns.NewMacroCommand(newSub1, newSub2)

	for _, input := range []int{3, 4} {
		vo := &macroVO{Input: input}
		if err := macro.Execute(notification.New("MacroCommandTest", vo, "")); err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		if vo.Result1 != 2*input || vo.Result2 != input*input {
			t.Errorf("input %d: results = %d, %d", input, vo.Result1, vo.Result2)
		}
	}

	if got := len(macro.SubCommands()); got != 2 {
		t.Errorf("SubCommands() len = %d, want 2", got)
	}

	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			return macro.Execute(notification.New("MacroCommandTest", &macroVO{Input: i}, ""))
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Execute() failed: %v", err)
	}
}

func TestMacroCommand_StopsOnError(t *testing.T) {
	errBoom := errors.New("boom")
	ran := 0

	macro := patterns.NewMacroCommand(
		patterns.Delegate(func(*notification.Notification) error { ran++; return nil }),
		patterns.Delegate(func(*notification.Notification) error { ran++; return errBoom }),
		patterns.Delegate(func(*notification.Notification) error { ran++; return nil }),
	)

	err := macro.Execute(notification.New("Note", nil, ""))
	if !errors.Is(err, errBoom) {
		t.Errorf("Execute() error = %v, want %v", err, errBoom)
	}
	if ran != 2 {
		t.Errorf("sub-commands run = %d, want 2", ran)
	}
}

func TestMacroCommand_SubCommandsReceiveKey(t *testing.T) {
	var sub sub1Command
	macro := patterns.NewMacroCommand(controller.Instance(&sub), nil)
	macro.InitializeNotifier("MacroKey")

	if err := macro.Execute(notification.New("Note", &macroVO{}, "")); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if got := sub.MultitonKey(); got != "MacroKey" {
		t.Errorf("sub-command key = %q, want %q", got, "MacroKey")
	}
}

func TestMacroCommand_ThroughFacade(t *testing.T) {
	f := newCore(t)
	f.RegisterCommand("MacroCommandTest", patterns.Macro(newSub1, newSub2))

	vo := &macroVO{Input: 7}
	if err := f.SendNotification("MacroCommandTest", vo, ""); err != nil {
		t.Fatalf("SendNotification() unexpected error: %v", err)
	}
	if vo.Result1 != 14 || vo.Result2 != 49 {
		t.Errorf("results = %d, %d, want 14, 49", vo.Result1, vo.Result2)
	}
}

func TestDelegateCommand(t *testing.T) {
	var got string
	cmd := patterns.NewDelegateCommand(func(n *notification.Notification) error {
		got = n.Name
		return nil
	})

	if err := cmd.Execute(notification.New("Delegated", nil, "")); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if got != "Delegated" {
		t.Errorf("action saw %q, want %q", got, "Delegated")
	}

	if err := patterns.NewDelegateCommand(nil).Execute(notification.New("Nil", nil, "")); err != nil {
		t.Errorf("nil action Execute() error = %v, want nil", err)
	}
}

// relayCommand re-sends its notification under a new name through its core.
type relayCommand struct {
	patterns.SimpleCommand
}

func (c *relayCommand) Execute(n *notification.Notification) error {
	return c.SendNotification("Relayed", n.Body, n.Type)
}

func TestCommand_SendsThroughNotifier(t *testing.T) {
	f := newCore(t)
	f.RegisterCommand("Relay", func() controller.Command { return &relayCommand{} })

	var relayed any
	f.RegisterCommand("Relayed", patterns.Delegate(func(n *notification.Notification) error {
		relayed = n.Body
		return nil
	}))

	if err := f.SendNotification("Relay", "payload", ""); err != nil {
		t.Fatalf("SendNotification() unexpected error: %v", err)
	}
	if relayed != "payload" {
		t.Errorf("relayed body = %v, want payload", relayed)
	}
}

func TestCommand_UninitializedNotifier(t *testing.T) {
	cmd := &relayCommand{}
	err := cmd.Execute(notification.New("Relay", nil, ""))
	if !errors.Is(err, facade.ErrNotifierUninitialized) {
		t.Errorf("Execute() error = %v, want %v", err, facade.ErrNotifierUninitialized)
	}
}
