package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/autostockvision/autostock/internal/inventory"
)

// cardDividerStyle draws the thin rule between card sections
var cardDividerStyle = lipgloss.NewStyle().Foreground(ColorBorder)

func renderCardDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return cardDividerStyle.Render(strings.Repeat("─", width))
}

// truncateWithEllipsis truncates a string to maxLen runes, adding ellipsis if needed.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	r := []rune(s)
	if len(r) > maxLen {
		return string(r[:maxLen-3]) + "..."
	}
	return s
}

// labelValue renders "label" on the left and value right-aligned within width.
func labelValue(label, value string, width int) string {
	left := LabelStyle.Render(label)
	right := ValueStyle.Render(value)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderProductCards renders the "Current Inventory" grid.
func (m Model) renderProductCards() string {
	if len(m.products) == 0 {
		return LabelStyle.Render("No products match the current filter")
	}

	perRow, cardWidth := m.cardLayout()

	cards := make([]string, len(m.products))
	for i, p := range m.products {
		cards[i] = renderProductCard(p, cardWidth, i == m.selected)
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

// renderProductCard renders a single product card.
func renderProductCard(p inventory.Product, width int, selected bool) string {
	style := CardStyle.Width(width)
	if selected {
		style = CardSelectedStyle.Width(width)
	}

	// Inner width for content (account for card padding)
	innerWidth := width - 2
	status := p.Status()

	indicator := SubtitleStyle.Render(IndicatorNoImage)
	if p.HasImage() {
		indicator = lipgloss.NewStyle().Foreground(ColorGraph).Render(IndicatorImage)
	}
	badge := StockBadge(status)
	nameWidth := innerWidth - lipgloss.Width(badge) - 3
	name := NameStyle.Render(truncateWithEllipsis(p.Name, nameWidth))
	gap := innerWidth - lipgloss.Width(indicator) - 1 - lipgloss.Width(name) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}

	lines := []string{
		indicator + " " + name + strings.Repeat(" ", gap) + badge,
		renderCardDivider(innerWidth),
		labelValue("Weight", p.WeightDisplay(), innerWidth),
		labelValue("Quantity", p.QuantityDisplay(), innerWidth),
		labelValue("Category", p.Category, innerWidth),
		labelValue("Last detected", p.LastDetected, innerWidth),
		renderCardDivider(innerWidth),
		renderStockLine(p, innerWidth),
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderStockLine renders "Stock ▰▰▰▱▱ 24/30".
func renderStockLine(p inventory.Product, width int) string {
	label := LabelStyle.Render("Stock")
	caption := lipgloss.NewStyle().Foreground(StockColor(p.Status())).Render(p.StockLabel())
	barWidth := width - lipgloss.Width(label) - lipgloss.Width(caption) - 2
	if barWidth < 1 {
		barWidth = 1
	}
	return label + " " + StockBar(barWidth, p.StockLevelPercent(), p.Status()) + " " + caption
}
