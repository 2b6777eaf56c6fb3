package config

import (
	"time"

	"github.com/autostockvision/autostock/internal/telemetry"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .autostock.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
	Catalog   CatalogConfig   `yaml:"catalog" mapstructure:"catalog"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// TelemetryConfig controls the simulated scale feed.
type TelemetryConfig struct {
	// Interval is the tick period.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Window is how long a detection window stays open.
	Window time.Duration `yaml:"window" mapstructure:"window"`

	// SeedWeight is the starting weight in kg.
	SeedWeight float64 `yaml:"seed_weight" mapstructure:"seed_weight"`

	// MaxStep bounds the per-tick weight change in kg.
	MaxStep float64 `yaml:"max_step" mapstructure:"max_step"`

	// DetectThreshold is the draw a tick must exceed to open a window.
	DetectThreshold float64 `yaml:"detect_threshold" mapstructure:"detect_threshold"`

	// Product is the label shown as the detected product.
	Product string `yaml:"product" mapstructure:"product"`

	// ScaleCapacity is the weight at which the gauge reads 100%.
	ScaleCapacity float64 `yaml:"scale_capacity" mapstructure:"scale_capacity"`

	// Seed makes the feed deterministic. Zero picks a random seed.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`

	// History is the number of weight samples kept for the sparkline.
	History int `yaml:"history" mapstructure:"history"`
}

// CatalogConfig points at an optional product list.
type CatalogConfig struct {
	// File is a YAML product list. Empty uses the built-in catalog.
	// Relative paths resolve against the config file's directory.
	File string `yaml:"file" mapstructure:"file"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is auto, always, or never.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultHistory is the default number of sparkline samples.
const DefaultHistory = 60

// DefaultConfig returns a Config with default settings.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Telemetry: TelemetryConfig{
			Interval:        telemetry.DefaultInterval,
			Window:          telemetry.DefaultWindow,
			SeedWeight:      telemetry.DefaultSeedWeight,
			MaxStep:         telemetry.DefaultMaxStep,
			DetectThreshold: telemetry.DefaultDetectThreshold,
			Product:         telemetry.DefaultProduct,
			ScaleCapacity:   telemetry.DefaultScaleCapacity,
			History:         DefaultHistory,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Settings converts the telemetry section into simulator settings.
func (t TelemetryConfig) Settings() telemetry.Settings {
	return telemetry.Settings{
		Interval:        t.Interval,
		Window:          t.Window,
		SeedWeight:      t.SeedWeight,
		MaxStep:         t.MaxStep,
		DetectThreshold: t.DetectThreshold,
		Product:         t.Product,
	}
}
