package telemetry_test

import (
	"testing"
	"time"

	"github.com/autostockvision/autostock/internal/logger"
	"github.com/autostockvision/autostock/internal/telemetry"
	telemetrytest "github.com/autostockvision/autostock/internal/telemetry/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T, settings telemetry.Settings, draws ...float64) (*telemetry.Runner, *telemetrytest.FakeClock) {
	t.Helper()
	clock := telemetrytest.NewFakeClock(epoch)
	r := telemetry.NewRunner(settings, clock, telemetrytest.NewSequenceSource(draws...), nil)
	t.Cleanup(r.Close)
	return r, clock
}

func TestRunner_TickAndWindow(t *testing.T) {
	r, clock := newRunner(t, telemetry.DefaultSettings(), 0.75, 0.9, 0.5, 0.1)
	r.Start()

	initial := r.Reading()
	assert.Equal(t, "2.45 kg", initial.WeightDisplay())
	assert.False(t, initial.Detecting)

	clock.Advance(3 * time.Second)
	got := r.Reading()
	assert.InDelta(t, 2.475, got.Weight, 1e-9)
	assert.True(t, got.Detecting)
	assert.Equal(t, "Detecting...", got.Badge())
	assert.Equal(t, 1, got.Tick)
	assert.Equal(t, epoch.Add(3*time.Second), got.At)
	assert.Equal(t, 1, r.Pending())

	clock.Advance(2 * time.Second)
	assert.False(t, r.Reading().Detecting)
	assert.Equal(t, 0, r.Pending())
}

func TestRunner_OverlappingWindows(t *testing.T) {
	settings := telemetry.DefaultSettings()
	settings.Interval = time.Second
	settings.Window = 2 * time.Second
	r, clock := newRunner(t, settings, 0.5, 0.9, 0.5, 0.9, 0.1)
	r.Start()

	clock.Advance(2 * time.Second)
	assert.True(t, r.Reading().Detecting)
	assert.Equal(t, 2, r.Pending())

	// The first window ends but the second keeps the badge on.
	clock.Advance(time.Second)
	assert.True(t, r.Reading().Detecting)
	assert.Equal(t, 1, r.Pending())

	clock.Advance(time.Second)
	assert.False(t, r.Reading().Detecting)
	assert.Equal(t, 0, r.Pending())
}

func TestRunner_UpdatesKeepLatest(t *testing.T) {
	r, clock := newRunner(t, telemetry.DefaultSettings(), 0.5)
	r.Start()

	clock.Advance(9 * time.Second)

	select {
	case got := <-r.Updates():
		assert.Equal(t, 3, got.Tick)
	default:
		t.Fatal("expected a pending reading")
	}

	select {
	case got := <-r.Updates():
		t.Fatalf("unexpected extra reading: %+v", got)
	default:
	}
}

func TestRunner_Close(t *testing.T) {
	r, clock := newRunner(t, telemetry.DefaultSettings(), 0.5, 0.9, 0.5)
	r.Start()

	clock.Advance(3 * time.Second)
	require.Equal(t, 1, r.Pending())

	r.Close()
	assert.Equal(t, 0, r.Pending())
	assert.Equal(t, 0, clock.Pending())

	frozen := r.Reading()
	clock.Advance(time.Minute)
	assert.Equal(t, frozen, r.Reading(), "state must not change after Close")

	for range r.Updates() {
	}
	_, open := <-r.Updates()
	assert.False(t, open)

	assert.NotPanics(t, r.Close)
}

func TestRunner_Logs(t *testing.T) {
	log := logger.NewBufferLogger()
	clock := telemetrytest.NewFakeClock(epoch)
	r := telemetry.NewRunner(telemetry.DefaultSettings(), clock, telemetrytest.NewSequenceSource(0.5), log)
	defer r.Close()

	r.Start()
	clock.Advance(3 * time.Second)

	assert.True(t, log.HasLevel("debug"))
	msgs := log.Snapshot()
	assert.Contains(t, msgs[len(msgs)-1].Message, "tick 1")
}
