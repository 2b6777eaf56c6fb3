package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/autostockvision/autostock/internal/config"
	"github.com/autostockvision/autostock/internal/logger"
	"github.com/autostockvision/autostock/internal/telemetry"
	"github.com/autostockvision/autostock/internal/ui"
)

// telemetrySparkWidth is the number of readings shown in each line's sparkline.
const telemetrySparkWidth = 20

// telemetryOptions holds the telemetry command's flags.
type telemetryOptions struct {
	Ticks    int
	Interval time.Duration
	Seed     uint64
	SeedSet  bool

	// Clock drives the feed. Nil uses the system clock.
	Clock telemetry.Clock
}

// telemetryOutput is the --json shape of a headless run.
type telemetryOutput struct {
	Settings telemetrySettingsOutput `json:"settings"`
	Readings []telemetry.Reading     `json:"readings"`
}

type telemetrySettingsOutput struct {
	Interval        string  `json:"interval"`
	Window          string  `json:"window"`
	SeedWeight      float64 `json:"seed_weight"`
	MaxStep         float64 `json:"max_step"`
	DetectThreshold float64 `json:"detect_threshold"`
	Product         string  `json:"product"`
	Seed            uint64  `json:"seed,omitempty"`
}

func newTelemetrySettingsOutput(t config.TelemetryConfig) telemetrySettingsOutput {
	return telemetrySettingsOutput{
		Interval:        t.Interval.String(),
		Window:          t.Window.String(),
		SeedWeight:      t.SeedWeight,
		MaxStep:         t.MaxStep,
		DetectThreshold: t.DetectThreshold,
		Product:         t.Product,
		Seed:            t.Seed,
	}
}

// telemetryCommand loads config and streams readings until the tick limit
// or an interrupt.
func telemetryCommand(ctx context.Context, w io.Writer, opts telemetryOptions) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	effective := *cfg
	effective.Telemetry = feedOverrides{Interval: opts.Interval, Seed: opts.Seed, SeedSet: opts.SeedSet}.apply(cfg.Telemetry)
	if err := config.Validate(&effective); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runTelemetry(ctx, w, effective.Telemetry, opts)
}

// runTelemetry runs the feed and prints one line per published reading.
// One goroutine consumes readings; the other closes the runner once the
// run is over, which in turn ends the consumer.
func runTelemetry(ctx context.Context, w io.Writer, tcfg config.TelemetryConfig, opts telemetryOptions) error {
	runner := newRunner(tcfg, opts.Clock, logger.NewEnvLogger("[telemetry]"))
	defer runner.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := telemetryOutput{Settings: newTelemetrySettingsOutput(tcfg)}
	var history []float64

	emit := func(r telemetry.Reading) {
		history = append(history, r.Weight)
		if machineMode {
			out.Readings = append(out.Readings, r)
			return
		}
		fmt.Fprintln(w, formatReadingLine(r, history))
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		runner.Close()
		return nil
	})

	g.Go(func() error {
		defer cancel()
		emit(runner.Reading())
		runner.Start()
		for r := range runner.Updates() {
			emit(r)
			if opts.Ticks > 0 && r.Tick >= opts.Ticks {
				return nil
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, out)
	}
	return nil
}

// formatReadingLine renders "tick   3  2.47 kg  Detecting...  ▃▅▆".
func formatReadingLine(r telemetry.Reading, history []float64) string {
	badge := ui.MutedStyle().Render(ui.PadRight(r.Badge(), 12))
	if r.Detecting {
		badge = ui.SuccessStyle().Render(ui.PadRight(r.Badge(), 12))
	}
	return fmt.Sprintf("tick %3d  %s  %s  %s",
		r.Tick,
		ui.PadRight(r.WeightDisplay(), 8),
		badge,
		ui.RenderSparkline(history, telemetrySparkWidth, ui.ColorInfo),
	)
}
