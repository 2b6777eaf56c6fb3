package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/autostockvision/autostock/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, 3*time.Second, cfg.Telemetry.Interval)
	assert.Equal(t, 2*time.Second, cfg.Telemetry.Window)
	assert.InDelta(t, 2.45, cfg.Telemetry.SeedWeight, 1e-9)
	assert.InDelta(t, 0.05, cfg.Telemetry.MaxStep, 1e-9)
	assert.InDelta(t, 0.7, cfg.Telemetry.DetectThreshold, 1e-9)
	assert.Equal(t, "Cereal Box - Premium Oats", cfg.Telemetry.Product)
	assert.InDelta(t, 5.0, cfg.Telemetry.ScaleCapacity, 1e-9)
	assert.Equal(t, uint64(0), cfg.Telemetry.Seed)
	assert.Equal(t, 60, cfg.Telemetry.History)
	assert.Empty(t, cfg.Catalog.File)
	assert.Equal(t, "auto", cfg.Output.Color)

	require.NoError(t, Validate(cfg))
}

func TestTelemetryConfig_Settings(t *testing.T) {
	s := DefaultConfig().Telemetry.Settings()

	assert.Equal(t, 3*time.Second, s.Interval)
	assert.Equal(t, 2*time.Second, s.Window)
	assert.Equal(t, "Cereal Box - Premium Oats", s.Product)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
telemetry:
  interval: 500ms
  window: 1s
  seed_weight: 1.2
  max_step: 0.1
  detect_threshold: 0.5
  product: Rice Bag
  scale_capacity: 10
  seed: 42
  history: 30
catalog:
  file: products.yaml
output:
  color: never
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Telemetry.Interval)
	assert.Equal(t, time.Second, cfg.Telemetry.Window)
	assert.InDelta(t, 1.2, cfg.Telemetry.SeedWeight, 1e-9)
	assert.InDelta(t, 0.1, cfg.Telemetry.MaxStep, 1e-9)
	assert.InDelta(t, 0.5, cfg.Telemetry.DetectThreshold, 1e-9)
	assert.Equal(t, "Rice Bag", cfg.Telemetry.Product)
	assert.InDelta(t, 10.0, cfg.Telemetry.ScaleCapacity, 1e-9)
	assert.Equal(t, uint64(42), cfg.Telemetry.Seed)
	assert.Equal(t, 30, cfg.Telemetry.History)
	assert.Equal(t, filepath.Join(dir, "products.yaml"), cfg.Catalog.File)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoad_PartialMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("telemetry:\n  interval: 10s\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Telemetry.Interval)
	assert.Equal(t, 2*time.Second, cfg.Telemetry.Window)
	assert.InDelta(t, 2.45, cfg.Telemetry.SeedWeight, 1e-9)
	assert.Equal(t, 60, cfg.Telemetry.History)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Empty(t, cfg.Catalog.File)
}

func TestLoad_AbsoluteCatalogPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	abs := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("catalog:\n  file: "+abs+"\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Catalog.File)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	bad := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(bad, []byte("telemetry: [unclosed"), 0644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Specified config file not found")
}

func TestFind_WalksUpToGitRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("version: 1\n"), 0644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ConfigFileName), found)
}

func TestFind_StopsAtGitRoot(t *testing.T) {
	outer := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outer, ConfigFileName), []byte("version: 1\n"), 0644))
	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))

	t.Setenv("HOME", t.TempDir())
	t.Chdir(repo)

	found, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))
	t.Setenv("HOME", t.TempDir())
	t.Chdir(repo)

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errPart string
	}{
		{"future version", func(c *Config) { c.Version = 99 }, "from the future"},
		{"zero interval", func(c *Config) { c.Telemetry.Interval = 0 }, "telemetry.interval must be positive"},
		{"negative window", func(c *Config) { c.Telemetry.Window = -time.Second }, "telemetry.window must be positive"},
		{"negative seed weight", func(c *Config) { c.Telemetry.SeedWeight = -1 }, "seed_weight can't be negative"},
		{"negative step", func(c *Config) { c.Telemetry.MaxStep = -0.1 }, "max_step can't be negative"},
		{"threshold above one", func(c *Config) { c.Telemetry.DetectThreshold = 1.5 }, "detect_threshold must be between 0 and 1"},
		{"threshold below zero", func(c *Config) { c.Telemetry.DetectThreshold = -0.1 }, "detect_threshold must be between 0 and 1"},
		{"zero capacity", func(c *Config) { c.Telemetry.ScaleCapacity = 0 }, "scale_capacity must be positive"},
		{"empty history", func(c *Config) { c.Telemetry.History = 0 }, "history must be at least 1"},
		{"unknown color", func(c *Config) { c.Output.Color = "rainbow" }, "Unknown output.color 'rainbow'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestValidate_Boundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Telemetry.DetectThreshold = 0
	cfg.Telemetry.MaxStep = 0
	cfg.Telemetry.SeedWeight = 0
	cfg.Telemetry.History = 1
	assert.NoError(t, Validate(cfg))

	cfg.Telemetry.DetectThreshold = 1
	assert.NoError(t, Validate(cfg))
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	err = WriteDefault(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.NoError(t, WriteDefault(path, true))
}

func TestSetValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, WriteDefault(path, false))

	require.NoError(t, SetValue(path, "telemetry.interval", "5s"))
	require.NoError(t, SetValue(path, "telemetry.detect_threshold", "0.9"))
	require.NoError(t, SetValue(path, "output.color", "never"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Telemetry.Interval)
	assert.InDelta(t, 0.9, cfg.Telemetry.DetectThreshold, 1e-9)
	assert.Equal(t, "never", cfg.Output.Color)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# tick period", "comments survive the edit")
}

func TestSetValue_CreatesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	require.NoError(t, SetValue(path, "telemetry.history", "120"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Telemetry.History)
}

func TestSetValue_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, WriteDefault(path, false))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = SetValue(path, "telemetry.detect_threshold", "2")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	err = SetValue(path, "version.minor", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'version' is not a section")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "catalog.yaml"), ExpandTilde("~/catalog.yaml"))
	assert.Equal(t, "relative/path", ExpandTilde("relative/path"))
	assert.Equal(t, "~other/x", ExpandTilde("~other/x"))
}
