package testutil

import (
	"fmt"
	"sync"
	"time"
)

// SequenceIDs generates request ids "req-1", "req-2", ... so log output is
// reproducible.
//
// Thread-safety: safe for concurrent use.
type SequenceIDs struct {
	mu  sync.Mutex
	seq int64
}

// Next returns the next id.
func (s *SequenceIDs) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("req-%d", s.seq)
}

// StepClock is a fake clock that advances by Step on every call to Now.
//
// Thread-safety: safe for concurrent use.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock starts at start and advances by step per reading.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

// Now returns the current reading and advances the clock.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
