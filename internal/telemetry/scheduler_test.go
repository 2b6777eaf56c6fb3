package telemetry_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/autostockvision/autostock/internal/telemetry"
	telemetrytest "github.com/autostockvision/autostock/internal/telemetry/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScheduler_Every(t *testing.T) {
	clock := telemetrytest.NewFakeClock(epoch)
	s := telemetry.NewScheduler(clock)

	count := 0
	s.Every(3*time.Second, func() { count++ })

	clock.Advance(2 * time.Second)
	assert.Equal(t, 0, count)

	clock.Advance(time.Second)
	assert.Equal(t, 1, count)

	clock.Advance(9 * time.Second)
	assert.Equal(t, 4, count)
}

func TestScheduler_EveryReplaces(t *testing.T) {
	clock := telemetrytest.NewFakeClock(epoch)
	s := telemetry.NewScheduler(clock)

	first, second := 0, 0
	s.Every(time.Second, func() { first++ })
	s.Every(time.Second, func() { second++ })

	clock.Advance(3 * time.Second)
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, second)
}

func TestScheduler_After(t *testing.T) {
	clock := telemetrytest.NewFakeClock(epoch)
	s := telemetry.NewScheduler(clock)

	fired := 0
	s.After(2*time.Second, func() { fired++ })
	assert.Equal(t, 1, s.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, s.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())

	clock.Advance(time.Minute)
	assert.Equal(t, 1, fired)
}

func TestScheduler_AfterFromCallback(t *testing.T) {
	clock := telemetrytest.NewFakeClock(epoch)
	s := telemetry.NewScheduler(clock)

	var order []string
	s.Every(3*time.Second, func() {
		order = append(order, "tick")
		s.After(2*time.Second, func() { order = append(order, "close") })
	})

	clock.Advance(6 * time.Second)
	assert.Equal(t, []string{"tick", "close", "tick"}, order)
	assert.Equal(t, 1, s.Pending())
}

func TestScheduler_Close(t *testing.T) {
	clock := telemetrytest.NewFakeClock(epoch)
	s := telemetry.NewScheduler(clock)

	ticks, delayed := 0, 0
	s.Every(time.Second, func() { ticks++ })
	s.After(5*time.Second, func() { delayed++ })
	s.After(7*time.Second, func() { delayed++ })

	clock.Advance(time.Second)
	require.Equal(t, 1, ticks)

	s.Close()
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 0, clock.Pending(), "every timer is stopped")

	clock.Advance(time.Minute)
	assert.Equal(t, 1, ticks)
	assert.Equal(t, 0, delayed)

	// Closed schedulers ignore new work.
	s.Every(time.Second, func() { ticks++ })
	s.After(time.Second, func() { delayed++ })
	clock.Advance(time.Minute)
	assert.Equal(t, 1, ticks)
	assert.Equal(t, 0, delayed)

	assert.NotPanics(t, s.Close)
}

func TestScheduler_SystemClock(t *testing.T) {
	s := telemetry.NewScheduler(telemetry.SystemClock())

	var ticks atomic.Int32
	s.Every(5*time.Millisecond, func() { ticks.Add(1) })

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	s.Close()
	stopped := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no callbacks after Close returns")
}
