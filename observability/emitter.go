package observability

import (
	"context"
	"log/slog"

	"github.com/juju/clock"
)

// Settings carries the event wiring shared by every component of a core.
type Settings struct {
	Observer Observer
	Clock    clock.Clock
}

// Option configures Settings.
type Option func(*Settings)

// WithObserver overrides the default SlogObserver.
func WithObserver(o Observer) Option {
	return func(s *Settings) {
		if o != nil {
			s.Observer = o
		}
	}
}

// WithClock overrides the wall clock used to timestamp events.
func WithClock(c clock.Clock) Option {
	return func(s *Settings) {
		if c != nil {
			s.Clock = c
		}
	}
}

// NewSettings applies opts over the defaults: slog.Default and the wall clock.
func NewSettings(opts ...Option) Settings {
	s := Settings{
		Observer: NewSlogObserver(slog.Default()),
		Clock:    clock.WallClock,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Emitter stamps and forwards events for one component of one core.
type Emitter struct {
	observer Observer
	clock    clock.Clock
	source   string
	core     string
}

// NewEmitter creates an Emitter for the component named source in core.
func NewEmitter(source, core string, opts ...Option) *Emitter {
	s := NewSettings(opts...)
	return &Emitter{
		observer: s.Observer,
		clock:    s.Clock,
		source:   source,
		core:     core,
	}
}

// Emit sends an event of type t at level with the given attributes.
func (e *Emitter) Emit(t EventType, level Level, data map[string]any) {
	e.observer.OnEvent(context.Background(), Event{
		Type:      t,
		Level:     level,
		Timestamp: e.clock.Now(),
		Source:    e.source,
		Core:      e.core,
		Data:      data,
	})
}
