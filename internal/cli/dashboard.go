package cli

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/autostockvision/autostock/internal/config"
	"github.com/autostockvision/autostock/internal/dashboard"
	"github.com/autostockvision/autostock/internal/errors"
	"github.com/autostockvision/autostock/internal/inventory"
	"github.com/autostockvision/autostock/internal/logger"
	"github.com/autostockvision/autostock/internal/telemetry"
	"github.com/autostockvision/autostock/internal/ui"
)

// DebugLogFile receives log output while the dashboard owns the terminal.
const DebugLogFile = "autostock-debug.log"

// dashboardOptions holds the dashboard command's flags.
type dashboardOptions struct {
	Interval     time.Duration
	Seed         uint64
	SeedSet      bool
	LowStockOnly bool
}

// dashboardCommand starts the TUI dashboard.
func dashboardCommand(opts dashboardOptions) error {
	if machineMode {
		return errors.New(errors.ErrTerminal,
			"The dashboard has no JSON output",
			"Use 'autostock catalog --json', 'autostock stats --json', or 'autostock telemetry --json'.")
	}
	if !ui.IsTerminal(os.Stdout) {
		return errors.New(errors.ErrTerminal,
			"The dashboard needs an interactive terminal",
			"Run it from a terminal, or use 'autostock telemetry' for a plain feed.")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// stdout belongs to Bubble Tea from here on
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(DebugLogFile, "autostock")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrTerminal,
				"Couldn't open the debug log",
				"Unset "+logger.DebugEnv+" or check write access to the current directory.")
		}
		defer f.Close()
	}

	effective := *cfg
	effective.Telemetry = feedOverrides{Interval: opts.Interval, Seed: opts.Seed, SeedSet: opts.SeedSet}.apply(cfg.Telemetry)
	if err := config.Validate(&effective); err != nil {
		return err
	}
	tcfg := effective.Telemetry

	runner := newRunner(tcfg, nil, logger.NewEnvLogger("[telemetry]"))
	runner.Start()
	defer runner.Close()

	model := dashboard.NewModel(dashboardModelOptions(tcfg, catalog, runner, opts.LowStockOnly))

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// dashboardModelOptions maps the telemetry config onto the dashboard model options.
func dashboardModelOptions(tcfg config.TelemetryConfig, catalog *inventory.Catalog, feed dashboard.Feed, lowOnly bool) dashboard.Options {
	return dashboard.Options{
		Catalog:       catalog,
		Stats:         inventory.DefaultStats(),
		Device:        telemetry.DefaultDevice(),
		Feed:          feed,
		ScaleCapacity: tcfg.ScaleCapacity,
		HistorySize:   tcfg.History,
		LowStockOnly:  lowOnly,
	}
}
