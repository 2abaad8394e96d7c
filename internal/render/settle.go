package render

import (
	"sync"
	"time"
)

// SettleDelay is how long a new comment keeps its highlight.
const SettleDelay = time.Second

// Settler runs one-shot tasks keyed by comment ID. Scheduling an ID that is
// already pending is a no-op. Pending tasks must be cancelled when their card
// leaves the display.
type Settler struct {
	delay time.Duration

	mu     sync.Mutex
	timers map[int64]*time.Timer
}

// NewSettler creates a Settler that fires tasks after delay.
func NewSettler(delay time.Duration) *Settler {
	return &Settler{
		delay:  delay,
		timers: make(map[int64]*time.Timer),
	}
}

// Schedule arranges for fn to run once after the delay. It reports whether a
// new task was scheduled.
func (s *Settler) Schedule(id int64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[id]; ok {
		return false
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		// a cancelled or replaced timer must not fire its task
		if s.timers[id] != timer {
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.mu.Unlock()

		fn()
	})
	s.timers[id] = timer

	return true
}

// Cancel stops the task for id if it has not fired yet.
func (s *Settler) Cancel(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// CancelAll stops every pending task.
func (s *Settler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending returns the number of tasks that have not fired.
func (s *Settler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
