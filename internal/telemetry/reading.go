package telemetry

import (
	"fmt"
	"math"
	"time"
)

// Badge texts for the detection signal.
const (
	BadgeDetecting = "Detecting..."
	BadgeStandby   = "Standby"
)

// WeightUnit is appended to every formatted weight.
const WeightUnit = "kg"

// Reading is a read-only snapshot of the telemetry state.
type Reading struct {
	Weight    float64   `json:"weight"`
	Detecting bool      `json:"detecting"`
	Product   string    `json:"product"`
	Tick      int       `json:"tick"`
	At        time.Time `json:"at"`
}

// FormatWeight renders kilograms with exactly two decimals.
func FormatWeight(kg float64) string {
	return fmt.Sprintf("%.2f %s", kg, WeightUnit)
}

// WeightDisplay renders the current weight, e.g. "2.45 kg".
func (r Reading) WeightDisplay() string {
	return FormatWeight(r.Weight)
}

// Badge returns "Detecting..." while a window is open, otherwise "Standby".
func (r Reading) Badge() string {
	if r.Detecting {
		return BadgeDetecting
	}
	return BadgeStandby
}

// GaugePercent returns the weight as a share of capacity, capped at 100.
func (r Reading) GaugePercent(capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	return math.Min(r.Weight/capacity*100, 100)
}
