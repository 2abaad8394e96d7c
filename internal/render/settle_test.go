package render

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettler_ScheduleOnce(t *testing.T) {
	s := NewSettler(10 * time.Millisecond)

	var calls atomic.Int32
	fn := func() { calls.Add(1) }

	assert.True(t, s.Schedule(1, fn))
	assert.False(t, s.Schedule(1, fn), "pending id is not rescheduled")
	assert.Equal(t, 1, s.Pending())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)

	// a fired id can be scheduled again
	assert.True(t, s.Schedule(1, fn))
	s.CancelAll()
}

func TestSettler_Cancel(t *testing.T) {
	s := NewSettler(20 * time.Millisecond)

	var fired atomic.Bool
	s.Schedule(1, func() { fired.Store(true) })
	s.Schedule(2, func() {})

	s.Cancel(1)
	s.Cancel(99)
	assert.Equal(t, 1, s.Pending())

	s.CancelAll()
	assert.Equal(t, 0, s.Pending())

	time.Sleep(50 * time.Millisecond)
	assert.False(t, fired.Load())
}
