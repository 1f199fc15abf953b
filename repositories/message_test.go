package repositories

import (
	"farm-advisor/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := OpenInMemory(logs.GetLoggerFromLevel(slog.LevelError))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func message(sender domain.Sender, text string, at time.Time) domain.Message {
	return domain.Message{ID: uuid.New(), Text: text, Sender: sender, CreatedAt: at}
}

func Test_Append_And_List_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)
	repository := NewTranscriptRepository(openDB(t), slog.Default())
	at := time.Now().UTC()

	// Given three messages sharing the same timestamp
	messages := []domain.Message{
		message(domain.SenderBot, "welcome", at),
		message(domain.SenderUser, "water?", at),
		message(domain.SenderBot, "water deeply", at),
	}
	for _, m := range messages {
		req.NoError(repository.Append(1, m))
	}

	// When listing the generation
	got, err := repository.List(1)
	req.NoError(err)

	// Then insertion order is kept and content survives the round trip
	req.Len(got, 3)
	for i := range messages {
		req.Equal(messages[i].ID, got[i].ID)
		req.Equal(messages[i].Text, got[i].Text)
		req.Equal(messages[i].Sender, got[i].Sender)
		req.True(messages[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func Test_Generations_Are_Isolated(t *testing.T) {
	req := require.New(t)
	repository := NewTranscriptRepository(openDB(t), slog.Default())

	req.NoError(repository.Append(1, message(domain.SenderUser, "first session", time.Now())))
	req.NoError(repository.Append(2, message(domain.SenderUser, "second session", time.Now())))
	// Generation 10 shares the "1" digit prefix with generation 1 without padding
	req.NoError(repository.Append(10, message(domain.SenderUser, "tenth session", time.Now())))

	got, err := repository.List(1)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal("first session", got[0].Text)

	// When generation 1 is dropped
	req.NoError(repository.Drop(1))

	// Then only generation 1 is gone
	got, err = repository.List(1)
	req.NoError(err)
	req.Empty(got)

	got, err = repository.List(2)
	req.NoError(err)
	req.Len(got, 1)

	got, err = repository.List(10)
	req.NoError(err)
	req.Len(got, 1)
}

func Test_List_Unknown_Generation(t *testing.T) {
	req := require.New(t)
	repository := NewTranscriptRepository(openDB(t), slog.Default())

	got, err := repository.List(42)
	req.NoError(err)
	req.Empty(got)
}
