// Package ui provides terminal output helpers for AutoStock's CLI commands.
//
// Everything here renders to plain strings with Lip Gloss so the same pieces
// can be printed by one-shot commands or embedded in the dashboard.
//
// # Components Overview
//
//	RenderHeader       - Branded "AutoStock Vision" header with divider
//	RenderSimpleTable  - Bubbles table rendered once for CLI output
//	RenderProgressBar  - Stock-level bars with percentage
//	RenderSparkline    - Single-row history graph for weight readings
//	PickProduct        - Interactive product selection using Huh forms
//	NewBubblesSpinner  - Shared spinner frames for Bubble Tea programs
//
// # Color Scheme
//
// Semantic colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - In stock, positive change
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Low stock, negative change
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//
// ApplyColorMode pins the Lip Gloss color profile for --no-color and the
// output.color config setting.
package ui
