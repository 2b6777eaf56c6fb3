package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/autostockvision/autostock/internal/inventory"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0B1120") // Night slate
	ColorSurfaceBg = lipgloss.Color("#111827") // Card surface
	ColorBorder    = lipgloss.Color("#334155") // Slate border

	// Semantic colors
	ColorHealthy  = lipgloss.Color("#22C55E") // In stock, positive change
	ColorWarning  = lipgloss.Color("#F59E0B") // Low stock, negative change
	ColorCritical = lipgloss.Color("#EF4444") // Near empty

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#F8FAFC")
	ColorTextSecondary = lipgloss.Color("#CBD5E1")
	ColorTextMuted     = lipgloss.Color("#64748B")

	// Accent colors
	ColorAccent    = lipgloss.Color("#3B82F6") // Brand blue
	ColorAccentDim = lipgloss.Color("#1D4ED8")

	// Graph colors
	ColorGraph = lipgloss.Color("#06B6D4") // Cyan
)

// Gauge thresholds for the weight bar (percent of scale capacity)
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorAccent)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	// Text styles
	NameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	BigValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	// Badges
	badgeBase = lipgloss.NewStyle().Padding(0, 1).Bold(true)

	BadgeGoodStyle      = badgeBase.Foreground(ColorDarkBg).Background(ColorHealthy)
	BadgeLowStyle       = badgeBase.Foreground(ColorDarkBg).Background(ColorWarning)
	BadgeDetectingStyle = badgeBase.Foreground(ColorTextPrimary).Background(ColorAccent)
	BadgeStandbyStyle   = badgeBase.Foreground(ColorTextSecondary).Background(ColorBorder)
	BadgeOnlineStyle    = lipgloss.NewStyle().Foreground(ColorHealthy).Bold(true)
)

// Status indicator characters
const (
	IndicatorOnline  = "●"
	IndicatorOffline = "○"
	IndicatorImage   = "▣"
	IndicatorNoImage = "▢"
)

// StockColor returns the color for a stock status.
func StockColor(status inventory.StockStatus) lipgloss.Color {
	if status == inventory.StockLow {
		return ColorWarning
	}
	return ColorHealthy
}

// StockBadge renders the "Low Stock"/"In Stock" badge.
func StockBadge(status inventory.StockStatus) string {
	if status == inventory.StockLow {
		return BadgeLowStyle.Render(status.Label())
	}
	return BadgeGoodStyle.Render(status.Label())
}

// ChangeColor returns the color for a stat's change text.
func ChangeColor(d inventory.ChangeDirection) lipgloss.Color {
	switch d {
	case inventory.ChangePositive:
		return ColorHealthy
	case inventory.ChangeNegative:
		return ColorWarning
	default:
		return ColorTextMuted
	}
}

// GaugeColor returns the color for a gauge percentage.
// Uses threshold-based coloring: green < 70%, amber 70-90%, red >= 90%.
func GaugeColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// StockBar renders a stock-level bar colored by status.
func StockBar(width int, percent float64, status inventory.StockStatus) string {
	if width < 1 {
		width = 1
	}
	percent = clampPercent(percent)

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
	return lipgloss.NewStyle().Foreground(StockColor(status)).Render(bar)
}

// SectionHeader renders a section header with the title on the left and value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}
	middle := strings.Repeat("─", fillWidth)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ColorGraph).Bold(true)

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+middle+" ") +
		valueStyle.Render(value) +
		borderStyle.Render(" ╮")
}

func clampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
