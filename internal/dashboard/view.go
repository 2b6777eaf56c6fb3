package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/autostockvision/autostock/internal/ui"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.renderStatsRow())
	b.WriteString("\n")

	b.WriteString(m.renderPanels())
	b.WriteString("\n\n")

	b.WriteString(m.renderInventoryHeader())
	b.WriteString("\n")
	if m.viewMode == ViewTable {
		b.WriteString(m.renderTable())
	} else {
		b.WriteString(m.renderProductCards())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the app name, tagline, and connection badge.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render(ui.AppName)

	tagline := SubtitleStyle.Render(" | " + ui.AppTagline)

	badge := BadgeOnlineStyle.Render(IndicatorOnline + " IoT Connected")
	if m.feedClosed {
		badge = SubtitleStyle.Render(IndicatorOffline + " IoT Disconnected")
	}

	left := title + tagline
	if m.width == 0 {
		return HeaderStyle.Render(left + "  " + badge)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(badge) - 2
	if gap < 2 {
		// Not enough room on one line
		return HeaderStyle.Render(left + "\n" + badge)
	}
	return HeaderStyle.Render(left + strings.Repeat(" ", gap) + badge)
}

// renderInventoryHeader renders the "Current Inventory" section rule with
// the visible product count.
func (m Model) renderInventoryHeader() string {
	count := fmt.Sprintf("%d of %d", len(m.products), m.catalog.Len())
	width := m.width
	if width == 0 {
		width = 80
	}
	return SectionHeader("Current Inventory", count, width-2)
}

// renderFooter renders the key hints with the sort and filter state.
func (m Model) renderFooter() string {
	state := []string{"sort: " + m.sortOrder.String()}
	if m.lowStockOnly {
		state = append(state, "filter: low stock")
	}
	state = append(state, "view: "+m.viewMode.String())

	return FooterStyle.Render(m.help.View(m.keys)) + "\n" +
		FooterStyle.Render(strings.Join(state, " | "))
}
