package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/autostockvision/autostock/internal/inventory"
)

// statIcons maps stat icon keys to glyphs.
var statIcons = map[string]string{
	inventory.IconPackage: "▤",
	inventory.IconScale:   "⚖",
	inventory.IconAlert:   "▲",
	inventory.IconTrend:   "↗",
}

// StatIcon returns the glyph for an icon key, or a bullet for unknown keys.
func StatIcon(key string) string {
	if g, ok := statIcons[key]; ok {
		return g
	}
	return "•"
}

// renderStatsRow renders the four stat cards side by side, or two per row
// on narrow terminals.
func (m Model) renderStatsRow() string {
	if len(m.stats) == 0 {
		return ""
	}

	perRow := len(m.stats)
	if m.LayoutMode() == LayoutMinimal && m.width > 0 {
		perRow = 2
	}

	width := defaultCardWidth - 10
	if m.width > 0 {
		width = m.width/perRow - cardChrome
	}
	if width < 18 {
		width = 18
	}

	cards := make([]string, len(m.stats))
	for i, s := range m.stats {
		cards[i] = renderStatCard(s, width)
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStatCard renders one stat tile: title and icon, value, change.
func renderStatCard(s inventory.StatEntry, width int) string {
	innerWidth := width - 2

	title := LabelStyle.Render(truncateWithEllipsis(s.Title, innerWidth-2))
	icon := lipgloss.NewStyle().Foreground(ColorAccent).Render(StatIcon(s.Icon))
	gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}

	change := lipgloss.NewStyle().Foreground(ChangeColor(s.Direction)).Render(s.Change)
	desc := SubtitleStyle.Render(truncateWithEllipsis(s.Description, innerWidth-lipgloss.Width(s.Change)-1))

	lines := []string{
		title + strings.Repeat(" ", gap) + icon,
		BigValueStyle.Render(s.Value),
		change + " " + desc,
	}
	return PanelStyle.Width(width).MarginBottom(1).Render(strings.Join(lines, "\n"))
}
