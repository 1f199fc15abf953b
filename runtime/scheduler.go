package runtime

import (
	"farm-advisor/contract"
	"farm-advisor/errors"
	"log/slog"
	"sync"
	"time"
)

// ReplyScheduler runs delayed tasks on their own timers.
// A task that panics is recovered and logged, it never takes the process down.
// Every pending task can be cancelled individually or all at once.
type ReplyScheduler struct {
	log     *slog.Logger
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*time.Timer
}

func NewReplyScheduler(log *slog.Logger) *ReplyScheduler {
	return &ReplyScheduler{log: log, pending: make(map[uint64]*time.Timer)}
}

func (s *ReplyScheduler) Schedule(delay time.Duration, task func()) contract.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	// The timer callback blocks on mu until the timer is registered below.
	s.pending[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, ok := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()
		if ok {
			s.run(id, task)
		}
	})

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		timer, ok := s.pending[id]
		if !ok {
			return false
		}
		delete(s.pending, id)
		return timer.Stop()
	}
}

func (s *ReplyScheduler) run(id uint64, task func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Scheduled task crashed", "task", id, "error", errors.ErrWorkerPanic, "panic", r)
		}
	}()
	task()
}

// Pending is the number of tasks whose timer has not fired yet.
func (s *ReplyScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels every pending task.
func (s *ReplyScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
	s.log.Debug("Reply scheduler stopped")
}
