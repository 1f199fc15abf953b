// Package testutil holds fakes shared by package tests.
package testutil

import (
	"farm-advisor/contract"
	"sync"
	"time"
)

type scheduled struct {
	delay     time.Duration
	task      func()
	cancelled bool
	done      bool
}

// ManualScheduler records scheduled tasks and runs them only when told to.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*scheduled
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(delay time.Duration, task func()) contract.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &scheduled{delay: delay, task: task}
	s.tasks = append(s.tasks, t)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t.done || t.cancelled {
			return false
		}
		t.cancelled = true
		return true
	}
}

// Pending counts tasks neither run nor cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}

// Delays returns the delay of every scheduled task in scheduling order.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.delay)
	}
	return out
}

// RunNext runs the oldest pending task. It reports false when nothing is pending.
func (s *ManualScheduler) RunNext() bool {
	return s.run(func(ts []*scheduled) *scheduled {
		for _, t := range ts {
			if !t.done && !t.cancelled {
				return t
			}
		}
		return nil
	})
}

// RunLast runs the newest pending task.
func (s *ManualScheduler) RunLast() bool {
	return s.run(func(ts []*scheduled) *scheduled {
		for i := len(ts) - 1; i >= 0; i-- {
			if !ts[i].done && !ts[i].cancelled {
				return ts[i]
			}
		}
		return nil
	})
}

// RunAll runs pending tasks in scheduling order, including cancelled ones when force is set.
func (s *ManualScheduler) RunAll(force bool) int {
	s.mu.Lock()
	var todo []*scheduled
	for _, t := range s.tasks {
		if !t.done && (force || !t.cancelled) {
			t.done = true
			todo = append(todo, t)
		}
	}
	s.mu.Unlock()
	for _, t := range todo {
		t.task()
	}
	return len(todo)
}

func (s *ManualScheduler) run(pick func([]*scheduled) *scheduled) bool {
	s.mu.Lock()
	t := pick(s.tasks)
	if t != nil {
		t.done = true
	}
	s.mu.Unlock()
	if t == nil {
		return false
	}
	t.task()
	return true
}
