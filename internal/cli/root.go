package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autostockvision/autostock/internal/config"
	"github.com/autostockvision/autostock/internal/ui"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "autostock",
	Short: "AutoStock Vision - smart inventory dashboard",
	Long: `AutoStock Vision shows a product catalog, an inventory summary, and a
live feed from a smart scale in your terminal.

Run 'autostock dashboard' for the interactive view, or use the catalog,
stats, and telemetry commands for plain or --json output.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || machineMode {
			ui.DisableColors()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: nearest .autostock.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "machine-readable JSON output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if machineMode {
		_ = WriteJSONFromError(os.Stdout, err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, ui.ErrorStyle().Render(err.Error()))
	if isUnknownCommandError(err) {
		if name := extractUnknownCommand(err); name != "" {
			fmt.Fprintf(os.Stderr, "\n'%s' isn't an autostock command. Run 'autostock --help' to see what's available.\n", name)
		}
	}
	os.Exit(1)
}

// loadConfig loads the nearest config (or defaults), validates it, and
// applies its color setting. The returned path is empty when defaults are used.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, path, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, path, err
	}

	if !noColor && !machineMode {
		ui.ApplyColorMode(ui.ColorMode(cfg.Output.Color))
	}
	return cfg, path, nil
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "autostock"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
