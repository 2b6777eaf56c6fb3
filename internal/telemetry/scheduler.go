package telemetry

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the timer. It reports false if the timer already fired
	// or was stopped.
	Stop() bool
}

// Clock creates timers. SystemClock backs it with the time package; tests
// swap in a fake that advances manually.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

// SystemClock returns a Clock backed by the runtime timer wheel.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Scheduler runs callbacks one at a time on behalf of a single owner.
//
// It holds at most one periodic timer and any number of one-shot timers.
// Callbacks never overlap, and once Close returns no callback runs again.
// Close must not be called from inside a callback.
type Scheduler struct {
	clock Clock

	run sync.Mutex // held while a callback runs

	mu          sync.Mutex // guards the fields below
	closed      bool
	periodic    Timer
	periodicGen uint64
	delayed     map[uint64]Timer
	nextID      uint64
}

// NewScheduler creates a scheduler on the given clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		clock:   clock,
		delayed: make(map[uint64]Timer),
	}
}

// Every runs f each period d, starting d from now. A second call replaces
// the first. It is a no-op after Close.
func (s *Scheduler) Every(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.periodic != nil {
		s.periodic.Stop()
	}
	s.periodicGen++
	s.armPeriodic(s.periodicGen, d, f)
}

// armPeriodic must be called with s.mu held.
func (s *Scheduler) armPeriodic(gen uint64, d time.Duration, f func()) {
	s.periodic = s.clock.AfterFunc(d, func() {
		ran := s.dispatch(func() bool { return s.periodicGen == gen }, f)
		if !ran {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed && s.periodicGen == gen {
			s.armPeriodic(gen, d, f)
		}
	})
}

// After runs f once, d from now. It is a no-op after Close.
func (s *Scheduler) After(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	id := s.nextID
	s.nextID++
	s.delayed[id] = s.clock.AfterFunc(d, func() {
		s.dispatch(func() bool {
			_, live := s.delayed[id]
			delete(s.delayed, id)
			return live
		}, f)
	})
}

// dispatch runs f under the run lock if the scheduler is open and live
// reports true. live is evaluated with s.mu held.
func (s *Scheduler) dispatch(live func() bool, f func()) bool {
	s.run.Lock()
	defer s.run.Unlock()

	s.mu.Lock()
	ok := !s.closed && live()
	s.mu.Unlock()
	if !ok {
		return false
	}

	f()
	return true
}

// Pending returns the number of one-shot timers that have not fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.delayed)
}

// Close cancels every timer. It waits for a running callback to finish and
// is safe to call more than once.
func (s *Scheduler) Close() {
	s.run.Lock()
	defer s.run.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if s.periodic != nil {
		s.periodic.Stop()
		s.periodic = nil
	}
	for id, t := range s.delayed {
		t.Stop()
		delete(s.delayed, id)
	}
}
