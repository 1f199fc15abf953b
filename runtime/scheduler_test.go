package runtime

import (
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestReplyScheduler_RunsTaskAfterDelay(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := NewReplyScheduler(log)

	done := make(chan time.Time, 1)
	start := time.Now()
	s.Schedule(20*time.Millisecond, func() { done <- time.Now() })
	req.Equal(1, s.Pending())

	select {
	case at := <-done:
		req.GreaterOrEqual(at.Sub(start), 20*time.Millisecond)
	case <-time.After(time.Second):
		req.Fail("Task did not run in time")
	}
	req.Eventually(func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestReplyScheduler_Cancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := NewReplyScheduler(log)

	var calls atomic.Int32
	cancel := s.Schedule(30*time.Millisecond, func() { calls.Add(1) })

	// When the task is cancelled before its delay
	req.True(cancel())
	// Then a second cancel is a no-op
	req.False(cancel())
	req.Equal(0, s.Pending())

	time.Sleep(60 * time.Millisecond)
	req.Equal(int32(0), calls.Load())
}

func TestReplyScheduler_StopCancelsEverything(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := NewReplyScheduler(log)

	var calls atomic.Int32
	for range 5 {
		s.Schedule(30*time.Millisecond, func() { calls.Add(1) })
	}
	req.Equal(5, s.Pending())

	s.Stop()

	time.Sleep(60 * time.Millisecond)
	req.Equal(int32(0), calls.Load())
	req.Equal(0, s.Pending())
}

func TestReplyScheduler_RecoversPanic(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := NewReplyScheduler(log)

	done := make(chan struct{})
	s.Schedule(time.Millisecond, func() { panic("boom") })
	s.Schedule(10*time.Millisecond, func() { close(done) })

	// Then the second task still runs
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Scheduler did not survive a panicking task")
	}
}
