package runtime

import (
	"context"
	"farm-advisor/contract"
	"farm-advisor/domain/event"
	"log/slog"
	"sync"
)

// EventFanout broadcasts domain events to in-process consumers.
//
// Delivery is synchronous and best-effort: a failing sink is logged and the
// remaining sinks still receive the event. There are no retries.
//
// It is intended for side effects (UI, logs, metrics), not for core domain logic.
type EventFanout struct {
	log   *slog.Logger
	mu    sync.RWMutex
	sinks []contract.EventSink
}

func NewEventFanout(log *slog.Logger, sinks ...contract.EventSink) *EventFanout {
	return &EventFanout{log: log, sinks: sinks}
}

func (f *EventFanout) Add(sinks ...contract.EventSink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks = append(f.sinks, sinks...)
}

// Fanout One sink for each event
func (f *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	f.mu.RLock()
	sinks := append([]contract.EventSink(nil), f.sinks...)
	f.mu.RUnlock()

	for _, sink := range sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			f.log.Warn("Sink rejected event", "event", evt, "error", err)
		}
	}
}
