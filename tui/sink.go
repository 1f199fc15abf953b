package tui

import (
	"context"
	"farm-advisor/domain/event"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Sink hands session events to the Bubble Tea loop.
// Consume never blocks: the controller may publish from inside Update.
type Sink struct {
	log    *slog.Logger
	events chan event.DomainEvent
}

type sessionEventMsg struct {
	event event.DomainEvent
}

func NewSink(log *slog.Logger, size int) *Sink {
	return &Sink{log: log, events: make(chan event.DomainEvent, size)}
}

func (s *Sink) Consume(_ context.Context, e event.DomainEvent) error {
	select {
	case s.events <- e:
	default:
		// The model re-reads the controller on the next event, nothing is lost for good.
		s.log.Debug("UI event dropped, buffer full", "event", e)
	}
	return nil
}

func (s *Sink) wait() tea.Cmd {
	return func() tea.Msg {
		return sessionEventMsg{event: <-s.events}
	}
}
