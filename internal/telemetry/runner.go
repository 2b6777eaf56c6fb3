package telemetry

import (
	"sync"

	"github.com/autostockvision/autostock/internal/logger"
)

// Runner drives a Simulator from a Scheduler and publishes each new Reading.
type Runner struct {
	settings Settings
	clock    Clock
	sched    *Scheduler
	log      logger.Logger

	mu  sync.RWMutex
	sim *Simulator

	updates   chan Reading
	closeOnce sync.Once
}

// NewRunner wires a simulator to a fresh scheduler. Nil clock and logger
// fall back to SystemClock and logger.Noop; a nil source is seeded randomly.
func NewRunner(settings Settings, clock Clock, src Source, log logger.Logger) *Runner {
	if clock == nil {
		clock = SystemClock()
	}
	if src == nil {
		src = NewSource(0)
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Runner{
		settings: settings,
		clock:    clock,
		sched:    NewScheduler(clock),
		log:      log,
		sim:      NewSimulator(settings, src),
		updates:  make(chan Reading, 1),
	}
}

// Start arms the periodic tick. The first tick lands one interval from now.
func (r *Runner) Start() {
	r.log.Debug("telemetry: starting feed, interval=%s window=%s", r.settings.Interval, r.settings.Window)
	r.sched.Every(r.settings.Interval, r.tick)
}

// Reading returns the current state.
func (r *Runner) Reading() Reading {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sim.Reading()
}

// Updates delivers readings after every state change. Only the latest
// undelivered reading is kept. The channel closes when the runner closes.
func (r *Runner) Updates() <-chan Reading {
	return r.updates
}

// Pending returns the number of open detection windows still waiting to end.
func (r *Runner) Pending() int {
	return r.sched.Pending()
}

// Close cancels all timers and closes Updates. After it returns the state
// no longer changes.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		r.sched.Close()
		close(r.updates)
		r.log.Debug("telemetry: feed closed")
	})
}

func (r *Runner) tick() {
	r.mu.Lock()
	opened := r.sim.Tick(r.clock.Now())
	reading := r.sim.Reading()
	r.mu.Unlock()

	if opened {
		r.sched.After(r.settings.Window, r.closeWindow)
	}
	r.log.Debug("telemetry: tick %d weight=%s badge=%s", reading.Tick, reading.WeightDisplay(), reading.Badge())
	r.publish(reading)
}

func (r *Runner) closeWindow() {
	r.mu.Lock()
	r.sim.CloseWindow(r.clock.Now())
	reading := r.sim.Reading()
	r.mu.Unlock()

	r.publish(reading)
}

// publish replaces any undelivered reading with rd. Callbacks are
// serialized by the scheduler, so there is a single sender.
func (r *Runner) publish(rd Reading) {
	select {
	case r.updates <- rd:
		return
	default:
	}
	select {
	case <-r.updates:
	default:
	}
	select {
	case r.updates <- rd:
	default:
	}
}
