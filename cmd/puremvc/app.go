package main

import (
	"fmt"
	"slices"
	"sync"

	"github.com/tailored-agentic-units/puremvc/controller"
	"github.com/tailored-agentic-units/puremvc/core/notification"
	"github.com/tailored-agentic-units/puremvc/facade"
	"github.com/tailored-agentic-units/puremvc/patterns"
)

// Notification names used by the demo application.
const (
	NoteStartup = "Startup"
	NoteDouble  = "Double"
	NoteDoubled = "Doubled"
)

const (
	historyProxyName   = "history"
	reportMediatorName = "report"
)

type report struct {
	Core    string
	Input   int
	Result  int
	History []int
}

// historyProxy records every computed result.
type historyProxy struct {
	*patterns.Proxy
	mu sync.Mutex
}

func newHistoryProxy() *historyProxy {
	return &historyProxy{Proxy: patterns.NewProxy(historyProxyName, []int{})}
}

func (p *historyProxy) Append(v int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.SetData(append(slices.Clone(p.Data().([]int)), v))
}

func (p *historyProxy) Values() []int {
	return slices.Clone(p.Data().([]int))
}

// doubleCommand doubles the notification body and announces the result.
type doubleCommand struct {
	patterns.SimpleCommand
}

func (c *doubleCommand) Execute(n *notification.Notification) error {
	input, ok := n.Body.(int)
	if !ok {
		return fmt.Errorf("unexpected body %T", n.Body)
	}
	return c.SendNotification(NoteDoubled, 2*input, "")
}

// recordCommand stores the doubled value in the history proxy.
type recordCommand struct {
	patterns.SimpleCommand
}

func (c *recordCommand) Execute(n *notification.Notification) error {
	f, err := c.Facade()
	if err != nil {
		return err
	}
	p, ok := f.RetrieveProxy(historyProxyName)
	if !ok {
		return fmt.Errorf("proxy %s not registered", historyProxyName)
	}
	p.(*historyProxy).Append(n.Body.(int))
	return nil
}

// reportMediator keeps the latest doubled value for display.
type reportMediator struct {
	*patterns.Mediator
	latest int
}

func newReportMediator() *reportMediator {
	return &reportMediator{Mediator: patterns.NewMediator(reportMediatorName, nil)}
}

func (m *reportMediator) ListNotificationInterests() []string {
	return []string{NoteDoubled}
}

func (m *reportMediator) HandleNotification(n *notification.Notification) {
	m.latest = n.Body.(int)
}

// startupCommand wires the application into its core.
type startupCommand struct {
	patterns.SimpleCommand
}

func (c *startupCommand) Execute(n *notification.Notification) error {
	f, err := c.Facade()
	if err != nil {
		return err
	}

	f.RegisterProxy(newHistoryProxy())
	f.RegisterMediator(newReportMediator())
	f.RegisterCommand(NoteDouble, func() controller.Command { return &doubleCommand{} })
	f.RegisterCommand(NoteDoubled, func() controller.Command { return &recordCommand{} })
	return nil
}

// run starts the application in f, sends input through it twice and
// collects what the proxy and mediator observed.
func run(f *facade.Facade, input int) (report, error) {
	f.RegisterCommand(NoteStartup, func() controller.Command { return &startupCommand{} })
	if err := f.SendNotification(NoteStartup, nil, ""); err != nil {
		return report{}, err
	}
	f.RemoveCommand(NoteStartup)

	for _, v := range []int{input, input + 1} {
		if err := f.SendNotification(NoteDouble, v, ""); err != nil {
			return report{}, err
		}
	}

	m, ok := f.RetrieveMediator(reportMediatorName)
	if !ok {
		return report{}, fmt.Errorf("mediator %s not registered", reportMediatorName)
	}
	p, ok := f.RetrieveProxy(historyProxyName)
	if !ok {
		return report{}, fmt.Errorf("proxy %s not registered", historyProxyName)
	}

	return report{
		Core:    f.Key(),
		Input:   input,
		Result:  m.(*reportMediator).latest,
		History: p.(*historyProxy).Values(),
	}, nil
}
