package event

import (
	"farm-advisor/domain"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	Session() domain.Generation
}

type MessageAppended struct {
	Generation domain.Generation
	Message    domain.Message
}

func (m MessageAppended) Session() domain.Generation {
	return m.Generation
}

type ViewChanged struct {
	Generation domain.Generation
	View       domain.View
	At         time.Time
}

func (v ViewChanged) Session() domain.Generation {
	return v.Generation
}

// ReplyDiscarded is emitted when a scheduled bot reply resolves after its session ended.
type ReplyDiscarded struct {
	Generation domain.Generation
	Current    domain.Generation
	ReplyTo    uuid.UUID
}

func (r ReplyDiscarded) Session() domain.Generation {
	return r.Generation
}
