package repositories

import (
	"encoding/json"
	"farm-advisor/domain"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// TranscriptRepository keeps advisory transcripts in BadgerDB, one key prefix per session generation.
type TranscriptRepository struct {
	db  *badger.DB
	log *slog.Logger
	seq atomic.Uint64
}

func NewTranscriptRepository(db *badger.DB, log *slog.Logger) *TranscriptRepository {
	return &TranscriptRepository{db: db, log: log}
}

type DiskMessage struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
	At     int64  `json:"at"`
}

// Append persists a message.
// The key is formatted as "msg:{generation_padded}:{sequence_padded}:{uuid}" so that:
//  1. A prefix scan returns one generation only.
//  2. Insertion order is kept even when two messages share a timestamp,
//     the 19-digit zero padding keeps the lexicographical order numeric.
func (r *TranscriptRepository) Append(gen domain.Generation, message domain.Message) error {
	key := fmt.Sprintf("%s%019d:%s", prefix(gen), r.seq.Add(1), message.ID)
	bytes, err := json.Marshal(fromMessage(message))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// List returns every message of a generation, oldest first.
func (r *TranscriptRepository) List(gen domain.Generation) ([]domain.Message, error) {
	var diskMessages []DiskMessage
	err := r.db.View(func(txn *badger.Txn) error {
		p := []byte(prefix(gen))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var dm DiskMessage
				if err := json.Unmarshal(value, &dm); err != nil {
					return err
				}
				diskMessages = append(diskMessages, dm)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(diskMessages))
	for _, dm := range diskMessages {
		message, err := toMessage(dm)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// Drop removes the whole transcript of a generation.
func (r *TranscriptRepository) Drop(gen domain.Generation) error {
	p := []byte(prefix(gen))
	deleted := 0
	err := r.db.Update(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		var keys [][]byte
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		// Deleting while the iterator is open is not allowed.
		it.Close()
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		deleted = len(keys)
		return nil
	})
	if err != nil {
		return err
	}
	r.log.Debug("Transcript dropped", "generation", gen, "messages", deleted)
	return nil
}

func prefix(gen domain.Generation) string {
	return fmt.Sprintf("msg:%020d:", uint64(gen))
}

func fromMessage(message domain.Message) DiskMessage {
	return DiskMessage{
		ID:     message.ID.String(),
		Text:   message.Text,
		Sender: string(message.Sender),
		At:     message.CreatedAt.UnixNano(),
	}
}

func toMessage(dm DiskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(dm.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        parsedID,
		Text:      dm.Text,
		Sender:    domain.Sender(dm.Sender),
		CreatedAt: time.Unix(0, dm.At).UTC(),
	}, nil
}
