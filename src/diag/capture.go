package diag

import (
	"context"
	"log/slog"
	"sync"
)

// Event is one captured diagnostic record.
type Event struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// Capture is a slog.Handler that retains every record in memory. Tests use
// it to assert on the diagnostic stream.
type Capture struct {
	mu     sync.Mutex
	events []Event
}

// NewCapture returns a capturing handler and a Logger writing to it.
func NewCapture() (*Capture, *Logger) {
	c := &Capture{}
	return c, NewWithHandler(c)
}

func (c *Capture) Enabled(context.Context, slog.Level) bool { return true }

func (c *Capture) Handle(_ context.Context, r slog.Record) error {
	ev := Event{Level: r.Level, Message: r.Message, Attrs: map[string]any{}}
	r.Attrs(func(a slog.Attr) bool {
		ev.Attrs[a.Key] = a.Value.Any()
		return true
	})
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
	return nil
}

func (c *Capture) WithAttrs([]slog.Attr) slog.Handler { return c }
func (c *Capture) WithGroup(string) slog.Handler      { return c }

// Events returns a copy of everything captured so far.
func (c *Capture) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// ByMessage returns captured events with the given message.
func (c *Capture) ByMessage(msg string) []Event {
	var out []Event
	for _, ev := range c.Events() {
		if ev.Message == msg {
			out = append(out, ev)
		}
	}
	return out
}
