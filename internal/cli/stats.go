package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/autostockvision/autostock/internal/dashboard"
	"github.com/autostockvision/autostock/internal/inventory"
	"github.com/autostockvision/autostock/internal/ui"
)

// statsCommand prints the stats summary.
func statsCommand(w io.Writer) error {
	// Config only matters here for output.color.
	if _, _, err := loadConfig(); err != nil {
		return err
	}

	stats := inventory.DefaultStats()
	if machineMode {
		return WriteJSONSuccess(w, map[string]interface{}{"stats": stats})
	}

	fmt.Fprint(w, renderStats(stats))
	return nil
}

// renderStats renders one line per stat: icon, title, value, change, description.
func renderStats(stats []inventory.StatEntry) string {
	titleStyle := lipgloss.NewStyle().Width(22)
	valueStyle := lipgloss.NewStyle().Bold(true).Width(10)
	changeWidth := lipgloss.NewStyle().Width(8)

	out := ui.RenderHeader(ui.HeaderInfo{Tagline: ui.AppTagline, Section: "Summary"})
	for _, s := range stats {
		change := lipgloss.NewStyle().Foreground(changeColor(s.Direction)).Render(s.Change)
		out += fmt.Sprintf("%s %s%s%s%s\n",
			ui.MutedStyle().Render(dashboard.StatIcon(s.Icon)),
			titleStyle.Render(s.Title),
			valueStyle.Render(s.Value),
			changeWidth.Render(change),
			ui.MutedStyle().Render(s.Description),
		)
	}
	return out
}

// changeColor maps a change direction to the CLI's ANSI palette.
func changeColor(d inventory.ChangeDirection) lipgloss.Color {
	switch d {
	case inventory.ChangePositive:
		return ui.ColorSuccess
	case inventory.ChangeNegative:
		return ui.ColorWarning
	default:
		return ui.ColorMuted
	}
}
