package config

import (
	"fmt"

	"github.com/autostockvision/autostock/internal/errors"
	"github.com/autostockvision/autostock/internal/ui"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but autostock only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade autostock or lower the version field in .autostock.yaml.")
	}

	if err := validateTelemetry(cfg.Telemetry); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid telemetry settings", "Check the 'telemetry' section in your .autostock.yaml.")
	}

	if !ui.ColorMode(cfg.Output.Color).Valid() {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output.color '%s'", cfg.Output.Color),
			"Use one of: auto, always, never.")
	}

	return nil
}

func validateTelemetry(t TelemetryConfig) error {
	switch {
	case t.Interval <= 0:
		return fmt.Errorf("telemetry.interval must be positive, got %s", t.Interval)
	case t.Window <= 0:
		return fmt.Errorf("telemetry.window must be positive, got %s", t.Window)
	case t.SeedWeight < 0:
		return fmt.Errorf("telemetry.seed_weight can't be negative, got %g", t.SeedWeight)
	case t.MaxStep < 0:
		return fmt.Errorf("telemetry.max_step can't be negative, got %g", t.MaxStep)
	case t.DetectThreshold < 0 || t.DetectThreshold > 1:
		return fmt.Errorf("telemetry.detect_threshold must be between 0 and 1, got %g", t.DetectThreshold)
	case t.ScaleCapacity <= 0:
		return fmt.Errorf("telemetry.scale_capacity must be positive, got %g", t.ScaleCapacity)
	case t.History < 1:
		return fmt.Errorf("telemetry.history must be at least 1, got %d", t.History)
	}
	return nil
}
