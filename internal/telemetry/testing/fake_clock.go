// Package testing provides test doubles for the telemetry package.
package testing

import (
	"sort"
	"sync"
	"time"

	"github.com/autostockvision/autostock/internal/telemetry"
)

// FakeClock is a manually advanced telemetry.Clock. Timers fire in deadline
// order on the goroutine that calls Advance.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*FakeTimer
}

// NewFakeClock creates a clock frozen at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules f to run once the clock has been advanced by d.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) telemetry.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &FakeTimer{clock: c, when: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Timers created by a firing callback also fire if they fall inside d.
// Callbacks run without the clock's lock held.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.when
		c.mu.Unlock()
		t.f()
		c.mu.Lock()
	}

	c.now = target
	c.mu.Unlock()
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// nextDue pops the earliest timer due at or before target. Caller holds c.mu.
func (c *FakeClock) nextDue(target time.Time) *FakeTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].when.Equal(c.timers[j].when) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].when.Before(c.timers[j].when)
	})
	t := c.timers[0]
	if t.when.After(target) {
		return nil
	}
	c.timers = c.timers[1:]
	return t
}

// remove drops t from the pending list. Caller holds c.mu.
func (c *FakeClock) remove(t *FakeTimer) bool {
	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

// FakeTimer is a timer created by FakeClock.
type FakeTimer struct {
	clock *FakeClock
	when  time.Time
	seq   uint64
	f     func()
}

// Stop cancels the timer if it has not fired.
func (t *FakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.clock.remove(t)
}

// SequenceSource replays fixed samples, then repeats the last one.
type SequenceSource struct {
	mu      sync.Mutex
	samples []float64
	next    int
}

// NewSequenceSource returns a source that yields samples in order.
func NewSequenceSource(samples ...float64) *SequenceSource {
	return &SequenceSource{samples: samples}
}

// Float64 returns the next sample.
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.samples) == 0 {
		return 0.5
	}
	if s.next >= len(s.samples) {
		return s.samples[len(s.samples)-1]
	}
	v := s.samples[s.next]
	s.next++
	return v
}
