package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Product name and tagline shown in headers.
const (
	AppName    = "AutoStock Vision"
	AppTagline = "Smart Inventory Management"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // Version string (e.g., "v0.4.0")
	Tagline string // Optional tagline
	Section string // Optional section title (e.g., "Current Inventory")
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the branded header used by non-interactive commands.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorBrand).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(ColorBrandAccent)

	taglineStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorBorder)

	var output strings.Builder

	output.WriteString(titleStyle.Render(AppName))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	if info.Section != "" {
		output.WriteString(lipgloss.NewStyle().Bold(true).Render(info.Section))
		output.WriteString("\n")
	}

	return output.String()
}

// PrintHeader writes the styled header to w.
func PrintHeader(w io.Writer, info HeaderInfo) {
	fmt.Fprint(w, RenderHeader(info))
}
