//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"farm-advisor/domain"
	"farm-advisor/domain/event"
	"time"
)

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// CancelFunc stops a scheduled task. It reports false if the task already ran or was cancelled.
type CancelFunc func() bool

// Scheduler runs a task once after a delay.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) CancelFunc
}

// ITranscriptRepository keeps the messages of each session generation in insertion order.
type ITranscriptRepository interface {
	Append(gen domain.Generation, message domain.Message) error
	List(gen domain.Generation) ([]domain.Message, error)
	Drop(gen domain.Generation) error
}

type IWeatherProvider interface {
	Current(ctx context.Context, location string) (domain.WeatherSnapshot, error)
}
