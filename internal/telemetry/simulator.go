// Package telemetry simulates the live IoT scale feed shown on the dashboard.
//
// The feed has two signals. The weight signal is a random walk that starts at
// a seed value, moves by a uniform step on every tick, and never drops below
// zero. The detection signal opens a short window with a fixed probability on
// each tick; the badge reads "Detecting..." while any window is open.
//
// Simulator holds the state and its transition functions. Scheduler owns the
// timers that drive it, and Runner ties the two together with a lifecycle:
// Start arms the periodic tick, Close cancels every pending timer at once.
package telemetry

import (
	"math/rand/v2"
	"time"
)

// Defaults for the simulated scale.
const (
	DefaultInterval        = 3 * time.Second
	DefaultWindow          = 2 * time.Second
	DefaultSeedWeight      = 2.45
	DefaultMaxStep         = 0.05
	DefaultDetectThreshold = 0.7
	DefaultProduct         = "Cereal Box - Premium Oats"
	DefaultScaleCapacity   = 5.0
)

// Settings controls the simulated feed.
type Settings struct {
	Interval        time.Duration // tick period
	Window          time.Duration // how long a detection window stays open
	SeedWeight      float64       // starting weight in kg
	MaxStep         float64       // per-tick perturbation is uniform in [-MaxStep, +MaxStep)
	DetectThreshold float64       // a window opens when a uniform draw exceeds this
	Product         string        // static detected-product label
}

// DefaultSettings returns the default feed settings.
func DefaultSettings() Settings {
	return Settings{
		Interval:        DefaultInterval,
		Window:          DefaultWindow,
		SeedWeight:      DefaultSeedWeight,
		MaxStep:         DefaultMaxStep,
		DetectThreshold: DefaultDetectThreshold,
		Product:         DefaultProduct,
	}
}

// Source yields uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a pseudo-random source. A zero seed picks a random one.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Simulator is the telemetry state plus the transitions that change it.
// It is not safe for concurrent use; Runner serializes access.
type Simulator struct {
	settings Settings
	src      Source

	weight float64
	open   int // detection windows currently open
	ticks  int
	at     time.Time
}

// NewSimulator creates a simulator at the seed weight with no open windows.
func NewSimulator(settings Settings, src Source) *Simulator {
	return &Simulator{
		settings: settings,
		src:      src,
		weight:   settings.SeedWeight,
	}
}

// Tick advances both signals by one step and reports whether a detection
// window opened. The weight draw happens before the detection draw.
func (s *Simulator) Tick(now time.Time) bool {
	step := (s.src.Float64() - 0.5) * 2 * s.settings.MaxStep
	s.weight += step
	if s.weight <= 0 {
		s.weight = 0
	}
	s.ticks++
	s.at = now

	if s.src.Float64() > s.settings.DetectThreshold {
		s.open++
		return true
	}
	return false
}

// CloseWindow ends one detection window. Extra calls are ignored.
func (s *Simulator) CloseWindow(now time.Time) {
	if s.open > 0 {
		s.open--
	}
	s.at = now
}

// Detecting reports whether any detection window is open.
func (s *Simulator) Detecting() bool {
	return s.open > 0
}

// OpenWindows returns the number of detection windows currently open.
func (s *Simulator) OpenWindows() int {
	return s.open
}

// Reading returns a copy of the current state.
func (s *Simulator) Reading() Reading {
	return Reading{
		Weight:    s.weight,
		Detecting: s.open > 0,
		Product:   s.settings.Product,
		Tick:      s.ticks,
		At:        s.at,
	}
}
