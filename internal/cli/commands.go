package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/autostockvision/autostock/internal/errors"
)

// Command-specific flags
var (
	dashboardIntervalFlag time.Duration
	dashboardSeedFlag     uint64
	dashboardLowFlag      bool
	catalogLowFlag        bool
	catalogOutputFlag     string
	telemetryTicksFlag    int
	telemetrySeedFlag     uint64
	telemetryIntervalFlag time.Duration
	initForce             bool
)

// dashboardCmd runs the interactive TUI
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive inventory dashboard",
	Long: `Open the full-screen inventory dashboard.

Shows the stats summary, the live weight monitor fed by the simulated
scale, the device status, and the product catalog as cards or a table.
Press ? inside the dashboard for key bindings.

Examples:
  autostock dashboard
  autostock dashboard --interval 1s
  autostock dashboard --seed 42 --low`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboardOptions{
			Interval:     flagDuration(cmd, "interval", dashboardIntervalFlag),
			Seed:         dashboardSeedFlag,
			SeedSet:      cmd.Flags().Changed("seed"),
			LowStockOnly: dashboardLowFlag,
		})
	},
}

// catalogCmd lists the product catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List products with stock status",
	Long: `List every product in the catalog with its weight, quantity, stock
level, and status.

Examples:
  autostock catalog
  autostock catalog --low
  autostock catalog --output yaml
  autostock catalog --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return catalogCommand(cmd.OutOrStdout(), catalogOptions{
			LowStockOnly: catalogLowFlag,
			Output:       catalogOutputFlag,
		})
	},
}

// catalogShowCmd prints one product
var catalogShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one product in detail",
	Long: `Show a single product. Without an id, pick one interactively.

Examples:
  autostock catalog show 2
  autostock catalog show`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		return catalogShowCommand(cmd.OutOrStdout(), id)
	},
}

// statsCmd prints the stats summary
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the inventory summary",
	Long: `Show the four summary tiles from the dashboard: total products, total
weight, low stock items, and recognition accuracy.

Examples:
  autostock stats
  autostock stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsCommand(cmd.OutOrStdout())
	},
}

// telemetryCmd runs the simulator without the TUI
var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Stream simulated scale readings",
	Long: `Run the simulated scale without the dashboard and print each reading.

Stops after --ticks ticks, or on Ctrl+C when --ticks is 0.

Examples:
  autostock telemetry --ticks 10
  autostock telemetry --interval 500ms --seed 7
  autostock telemetry --ticks 5 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return telemetryCommand(cmd.Context(), cmd.OutOrStdout(), telemetryOptions{
			Ticks:    telemetryTicksFlag,
			Interval: flagDuration(cmd, "interval", telemetryIntervalFlag),
			Seed:     telemetrySeedFlag,
			SeedSet:  cmd.Flags().Changed("seed"),
		})
	},
}

// initCmd creates a new .autostock.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .autostock.yaml configuration",
	Long: `Create a .autostock.yaml file in the current directory with the default
telemetry, catalog, and output settings.

Examples:
  autostock init
  autostock init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd.OutOrStdout(), initForce)
	},
}

// configCmd groups config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit configuration",
}

// configSetCmd edits one key in the config file
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a dotted key in the nearest config file, keeping its comments.

Examples:
  autostock config set telemetry.interval 1s
  autostock config set output.color never`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetCommand(cmd.OutOrStdout(), args[0], args[1])
	},
}

// configPathCmd prints which config file is in use
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configPathCommand(cmd.OutOrStdout())
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for autostock.

Examples:
  # Bash
  autostock completion bash > /etc/bash_completion.d/autostock

  # Zsh
  autostock completion zsh > "${fpath[1]}/_autostock"

  # Fish
  autostock completion fish > ~/.config/fish/completions/autostock.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

// flagDuration returns the flag value only when the user set it, so the
// config file wins over the flag's default.
func flagDuration(cmd *cobra.Command, name string, v time.Duration) time.Duration {
	if cmd.Flags().Changed(name) {
		return v
	}
	return 0
}

func init() {
	// dashboard command flags
	dashboardCmd.Flags().DurationVar(&dashboardIntervalFlag, "interval", 3*time.Second, "tick period (e.g., 1s, 500ms)")
	dashboardCmd.Flags().Uint64Var(&dashboardSeedFlag, "seed", 0, "seed for a repeatable feed (0 = random)")
	dashboardCmd.Flags().BoolVar(&dashboardLowFlag, "low", false, "start with the low-stock filter on")

	// catalog command flags
	catalogCmd.Flags().BoolVar(&catalogLowFlag, "low", false, "only show low-stock products")
	catalogCmd.Flags().StringVarP(&catalogOutputFlag, "output", "o", "table", "output format: table or yaml")

	// telemetry command flags
	telemetryCmd.Flags().IntVar(&telemetryTicksFlag, "ticks", 0, "stop after N ticks (0 = until Ctrl+C)")
	telemetryCmd.Flags().DurationVar(&telemetryIntervalFlag, "interval", 3*time.Second, "tick period (e.g., 1s, 500ms)")
	telemetryCmd.Flags().Uint64Var(&telemetrySeedFlag, "seed", 0, "seed for a repeatable feed (0 = random)")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	catalogCmd.AddCommand(catalogShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	// Register all commands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(telemetryCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}
