package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/autostockvision/autostock/internal/config"
	"github.com/autostockvision/autostock/internal/errors"
	"github.com/autostockvision/autostock/internal/ui"
)

// initCommand writes a default .autostock.yaml in the current directory.
// When the file exists and we're on a terminal, it asks before overwriting.
func initCommand(w io.Writer, force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force && !machineMode && ui.IsTerminal(os.Stdin) {
		overwrite, err := confirmOverwrite(configPath)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
		force = true
	}

	if err := config.WriteDefault(configPath, force); err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, map[string]string{"path": configPath})
	}

	fmt.Fprintf(w, "%s Created %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), configPath)
	fmt.Fprintln(w, ui.MutedStyle().Render("  Edit it directly or use 'autostock config set <key> <value>'."))
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}
	return overwrite, nil
}

// configSetCommand edits one key of the config file in use.
func configSetCommand(w io.Writer, key, value string) error {
	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Config file not found",
			"Run 'autostock init' to create one.")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, map[string]string{"path": path, "key": key, "value": value})
	}
	fmt.Fprintf(w, "%s Set %s = %s in %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), key, value, path)
	return nil
}

// configPathCommand prints the config file in use, or notes that defaults apply.
func configPathCommand(w io.Writer) error {
	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, map[string]interface{}{"path": path, "defaults": path == ""})
	}
	if path == "" {
		fmt.Fprintln(w, ui.MutedStyle().Render("No config file found; using defaults."))
		return nil
	}
	fmt.Fprintln(w, path)
	return nil
}
