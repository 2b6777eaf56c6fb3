// Package cli implements the autostock command-line interface.
//
// Each Cobra command is a thin shell that parses flags and delegates to a
// command function taking an io.Writer, so output can be captured in tests.
//
// # Command Structure
//
//	autostock dashboard          - Interactive TUI (needs a terminal)
//	autostock catalog [--low]    - Product table, or --output yaml
//	autostock catalog show [id]  - One product; picks interactively without an id
//	autostock stats              - Summary tiles
//	autostock telemetry          - Headless scale feed, one line per reading
//	autostock init               - Create .autostock.yaml
//	autostock config set|path    - Edit or locate the config file
//	autostock version            - Build information
//
// # Global Flags
//
// --config points at a specific config file. --no-color switches Lip Gloss
// to the ASCII profile. --json wraps output in a {success, data, error}
// envelope; errors are mapped to stable codes by ErrorToJSON.
//
// Config is loaded lazily by each command through loadConfig, so commands
// like version and completion work even when the config file is broken.
package cli
