package controller_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/tailored-agentic-units/puremvc/controller"
	"github.com/tailored-agentic-units/puremvc/core/notification"
	"github.com/tailored-agentic-units/puremvc/observability"
	"github.com/tailored-agentic-units/puremvc/view"
)

// testVO carries the input and result of doubleCommand.
type testVO struct {
	Input  int
	Result int
}

type doubleCommand struct {
	key string
}

func (c *doubleCommand) InitializeNotifier(key string) { c.key = key }

func (c *doubleCommand) Execute(n *notification.Notification) error {
	vo := n.Body.(*testVO)
	vo.Result = 2 * vo.Input
	return nil
}

type tripleCommand struct{}

func (tripleCommand) Execute(n *notification.Notification) error {
	vo := n.Body.(*testVO)
	vo.Result = 3 * vo.Input
	return nil
}

// countCommand increments Result on every execution.
type countCommand struct{}

func (countCommand) Execute(n *notification.Notification) error {
	n.Body.(*testVO).Result++
	return nil
}

func newDouble() controller.Command { return &doubleCommand{} }

func newController(t *testing.T, opts ...observability.Option) (*controller.Controller, *view.View) {
	t.Helper()
	key := t.Name()
	opts = append([]observability.Option{observability.WithObserver(observability.NoOpObserver{})}, opts...)
	c := controller.GetInstance(key, opts...)
	t.Cleanup(func() {
		controller.Remove(key)
		view.Remove(key)
	})
	return c, view.GetInstance(key)
}

func TestGetInstance(t *testing.T) {
	c1 := controller.GetInstance("ControllerTestKey1")
	c2 := controller.GetInstance("ControllerTestKey1")
	t.Cleanup(func() {
		controller.Remove("ControllerTestKey1")
		view.Remove("ControllerTestKey1")
	})

	if c1 != c2 {
		t.Error("GetInstance() returned distinct controllers for the same key")
	}
	if !view.Has("ControllerTestKey1") {
		t.Error("GetInstance() did not create the View for the key")
	}
}

func TestRegisterAndExecuteCommand(t *testing.T) {
	c, _ := newController(t)
	c.RegisterCommand("ControllerTest", newDouble)

	vo := &testVO{Input: 12}
	if err := c.ExecuteCommand(notification.New("ControllerTest", vo, "")); err != nil {
		t.Fatalf("ExecuteCommand() unexpected error: %v", err)
	}
	if vo.Result != 24 {
		t.Errorf("Result = %d, want 24", vo.Result)
	}
}

func TestExecuteCommand_InitializesKey(t *testing.T) {
	c, _ := newController(t)
	cmd := &doubleCommand{}
	c.RegisterCommand("ControllerTest", controller.Instance(cmd))

	if err := c.ExecuteCommand(notification.New("ControllerTest", &testVO{}, "")); err != nil {
		t.Fatalf("ExecuteCommand() unexpected error: %v", err)
	}
	if cmd.key != c.Key() {
		t.Errorf("command key = %q, want %q", cmd.key, c.Key())
	}
}

func TestExecuteCommand_Unregistered(t *testing.T) {
	c, _ := newController(t)
	if err := c.ExecuteCommand(notification.New("Nothing", nil, "")); err != nil {
		t.Errorf("ExecuteCommand() error = %v, want nil", err)
	}
}

func TestExecuteCommand_NilFactory(t *testing.T) {
	c, _ := newController(t)
	c.RegisterCommand("Nil", nil)
	c.RegisterCommand("NilCommand", func() controller.Command { return nil })

	for _, name := range []string{"Nil", "NilCommand"} {
		if err := c.ExecuteCommand(notification.New(name, nil, "")); err != nil {
			t.Errorf("ExecuteCommand(%s) error = %v, want nil", name, err)
		}
	}
}

func TestExecuteCommand_Error(t *testing.T) {
	rec := observability.NewRecordingObserver()
	c, _ := newController(t, observability.WithObserver(rec))
	errBoom := errors.New("boom")

	c.RegisterCommand("Failing", func() controller.Command {
		return failingCommand{err: errBoom}
	})

	err := c.ExecuteCommand(notification.New("Failing", nil, ""))
	if !errors.Is(err, errBoom) {
		t.Errorf("ExecuteCommand() error = %v, want %v", err, errBoom)
	}
	if got := len(rec.OfType(controller.EventCommandFailed)); got != 1 {
		t.Errorf("%s events = %d, want 1", controller.EventCommandFailed, got)
	}
}

type failingCommand struct {
	err error
}

func (c failingCommand) Execute(*notification.Notification) error { return c.err }

func TestRegisterAndRemoveCommand(t *testing.T) {
	c, v := newController(t)
	c.RegisterCommand("ControllerRemoveTest", newDouble)

	vo := &testVO{Input: 12}
	note := notification.New("ControllerRemoveTest", vo, "")
	if err := v.NotifyObservers(note); err != nil {
		t.Fatalf("NotifyObservers() unexpected error: %v", err)
	}
	if vo.Result != 24 {
		t.Fatalf("Result = %d, want 24", vo.Result)
	}

	vo.Result = 0
	if !c.RemoveCommand("ControllerRemoveTest") {
		t.Fatal("RemoveCommand() = false, want true")
	}
	if err := v.NotifyObservers(note); err != nil {
		t.Fatalf("NotifyObservers() unexpected error: %v", err)
	}
	if vo.Result != 0 {
		t.Errorf("Result after removal = %d, want 0", vo.Result)
	}
	if c.RemoveCommand("ControllerRemoveTest") {
		t.Error("second RemoveCommand() = true, want false")
	}
}

func TestHasCommand(t *testing.T) {
	c, _ := newController(t)
	c.RegisterCommand("hasCommandTest", newDouble)

	if !c.HasCommand("hasCommandTest") {
		t.Error("HasCommand() = false, want true")
	}
	c.RemoveCommand("hasCommandTest")
	if c.HasCommand("hasCommandTest") {
		t.Error("HasCommand() after removal = true, want false")
	}
}

func TestReregisterCommand_SingleObserver(t *testing.T) {
	c, v := newController(t)
	c.RegisterCommand("ControllerTest2", func() controller.Command { return countCommand{} })
	c.RegisterCommand("ControllerTest2", func() controller.Command { return countCommand{} })

	vo := &testVO{}
	note := notification.New("ControllerTest2", vo, "")
	if err := v.NotifyObservers(note); err != nil {
		t.Fatalf("NotifyObservers() unexpected error: %v", err)
	}
	if vo.Result != 1 {
		t.Errorf("executions = %d, want 1", vo.Result)
	}

	c.RemoveCommand("ControllerTest2")
	if v.HasObservers("ControllerTest2") {
		t.Error("residual controller observer after single RemoveCommand()")
	}
	if err := v.NotifyObservers(note); err != nil {
		t.Fatalf("NotifyObservers() unexpected error: %v", err)
	}
	if vo.Result != 1 {
		t.Errorf("executions after removal = %d, want 1", vo.Result)
	}
}

func TestReregisterCommand_Overwrites(t *testing.T) {
	c, v := newController(t)
	c.RegisterCommand("Overwrite", newDouble)
	c.RegisterCommand("Overwrite", func() controller.Command { return tripleCommand{} })

	vo := &testVO{Input: 5}
	if err := v.NotifyObservers(notification.New("Overwrite", vo, "")); err != nil {
		t.Fatalf("NotifyObservers() unexpected error: %v", err)
	}
	if vo.Result != 15 {
		t.Errorf("Result = %d, want 15", vo.Result)
	}
}

func TestFactoryCalledPerExecution(t *testing.T) {
	c, v := newController(t)
	var built atomic.Int64
	c.RegisterCommand("Fresh", func() controller.Command {
		built.Add(1)
		return countCommand{}
	})

	vo := &testVO{}
	for range 3 {
		if err := v.NotifyObservers(notification.New("Fresh", vo, "")); err != nil {
			t.Fatalf("NotifyObservers() unexpected error: %v", err)
		}
	}
	if built.Load() != 3 {
		t.Errorf("factory calls = %d, want 3", built.Load())
	}
}

func TestListNotificationNames(t *testing.T) {
	c, _ := newController(t)
	for _, name := range []string{"b", "a"} {
		c.RegisterCommand(name, newDouble)
	}

	if diff := cmp.Diff([]string{"a", "b"}, c.ListNotificationNames()); diff != "" {
		t.Errorf("ListNotificationNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_UnwiresView(t *testing.T) {
	key := "ControllerTestRemove"
	c := controller.GetInstance(key, observability.WithObserver(observability.NoOpObserver{}))
	t.Cleanup(func() {
		controller.Remove(key)
		view.Remove(key)
	})
	c.RegisterCommand("Wired", newDouble)

	controller.Remove(key)

	if controller.Has(key) {
		t.Error("Has() after Remove() = true, want false")
	}
	if view.GetInstance(key).HasObservers("Wired") {
		t.Error("removed controller still observes the view")
	}
}

func TestConcurrentRegisterCommand(t *testing.T) {
	c, v := newController(t)

	var g errgroup.Group
	for range 32 {
		g.Go(func() error {
			c.RegisterCommand("Racing", func() controller.Command { return countCommand{} })
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	vo := &testVO{}
	if err := v.NotifyObservers(notification.New("Racing", vo, "")); err != nil {
		t.Fatalf("NotifyObservers() unexpected error: %v", err)
	}
	if vo.Result != 1 {
		t.Errorf("executions = %d, want 1", vo.Result)
	}
}

func TestConcurrentExecute(t *testing.T) {
	c, v := newController(t)
	var executed atomic.Int64
	c.RegisterCommand("Parallel", controller.Instance(delegate(func(*notification.Notification) error {
		executed.Add(1)
		return nil
	})))

	var g errgroup.Group
	for i := range 16 {
		g.Go(func() error {
			return v.NotifyObservers(notification.New("Parallel", i, ""))
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if got := executed.Load(); got != 16 {
		t.Errorf("executions = %d, want 16", got)
	}
}

type delegate func(*notification.Notification) error

func (d delegate) Execute(n *notification.Notification) error { return d(n) }

func TestEvents(t *testing.T) {
	rec := observability.NewRecordingObserver()
	c, _ := newController(t, observability.WithObserver(rec))

	c.RegisterCommand("Evented", newDouble)
	c.RemoveCommand("Evented")

	registered := rec.OfType(controller.EventCommandRegistered)
	if len(registered) != 1 || registered[0].Data["notification"] != "Evented" {
		t.Fatalf("%s events = %+v", controller.EventCommandRegistered, registered)
	}
	if got := len(rec.OfType(controller.EventCommandRemoved)); got != 1 {
		t.Errorf("%s events = %d, want 1", controller.EventCommandRemoved, got)
	}
	if registered[0].Core != c.Key() {
		t.Errorf("event core = %q, want %q", registered[0].Core, c.Key())
	}
}

