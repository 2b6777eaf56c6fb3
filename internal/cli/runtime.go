package cli

import (
	"time"

	"github.com/autostockvision/autostock/internal/config"
	"github.com/autostockvision/autostock/internal/inventory"
	"github.com/autostockvision/autostock/internal/logger"
	"github.com/autostockvision/autostock/internal/telemetry"
)

// feedOverrides are command-line values that take precedence over the
// telemetry section of the config. Zero values mean "not set".
type feedOverrides struct {
	Interval time.Duration
	Seed     uint64
	SeedSet  bool
}

// apply returns a copy of the telemetry config with the overrides applied.
func (o feedOverrides) apply(t config.TelemetryConfig) config.TelemetryConfig {
	if o.Interval > 0 {
		t.Interval = o.Interval
	}
	if o.SeedSet {
		t.Seed = o.Seed
	}
	return t
}

// loadCatalog returns the catalog named by the config, or the built-in one.
func loadCatalog(cfg *config.Config) (*inventory.Catalog, error) {
	if cfg.Catalog.File == "" {
		return inventory.Default(), nil
	}
	return inventory.LoadFile(cfg.Catalog.File)
}

// newRunner builds a telemetry runner from config. A nil clock uses the
// system clock.
func newRunner(t config.TelemetryConfig, clock telemetry.Clock, log logger.Logger) *telemetry.Runner {
	return telemetry.NewRunner(t.Settings(), clock, telemetry.NewSource(t.Seed), log)
}
