// Package domain contains core concepts of the farm advisor.
// This file defines Message events exchanged in the advisory chat.
// Messages are immutable once appended to a transcript.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message represents an immutable chat event.
type Message struct {
	ID        uuid.UUID // unique identifier
	Text      string
	Sender    Sender
	CreatedAt time.Time
}

func (m Message) FromBot() bool {
	return m.Sender == SenderBot
}
