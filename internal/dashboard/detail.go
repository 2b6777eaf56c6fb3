package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/autostockvision/autostock/internal/inventory"
)

// Detail view styles
var (
	detailContainerStyle = lipgloss.NewStyle().
				Padding(0, 2)

	detailSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1).
				MarginBottom(1)
)

// renderDetailView renders the expanded single-product view.
func (m Model) renderDetailView() string {
	p, ok := m.SelectedProduct()
	if !ok {
		return LabelStyle.Render("No product selected")
	}

	var b strings.Builder
	b.WriteString(m.renderDetailHeader(p))
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.detailContent(p))
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetailFooter())
	return detailContainerStyle.Render(b.String())
}

func (m Model) renderDetailHeader(p inventory.Product) string {
	return TitleStyle.Render(p.Name) + "  " + StockBadge(p.Status())
}

func (m Model) renderDetailFooter() string {
	hints := []string{"esc back", "↑↓ scroll", "q quit"}
	if m.viewportReady {
		hints = append(hints, fmt.Sprintf("%3.0f%%", m.detailViewport.ScrollPercent()*100))
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// detailContentWidth is the width of the detail sections.
func (m Model) detailContentWidth() int {
	w := m.width - 6
	if w < 40 {
		w = 40
	}
	return w
}

// detailContent renders every section of the detail view for the viewport.
func (m Model) detailContent(p inventory.Product) string {
	width := m.detailContentWidth()
	inner := width - 2

	info := []string{
		NameStyle.Render("Product"),
		labelValue("ID", p.ID, inner),
		labelValue("Category", p.Category, inner),
		labelValue("Unit weight", p.WeightDisplay(), inner),
		labelValue("Last detected", p.LastDetected, inner),
	}
	if p.HasImage() {
		info = append(info, labelValue("Image", p.Image, inner))
	}

	stock := []string{
		NameStyle.Render("Stock"),
		labelValue("Quantity", p.QuantityDisplay(), inner),
		labelValue("Minimum", fmt.Sprintf("%d units", p.MinStock), inner),
		labelValue("Status", p.Status().Label(), inner),
		renderStockLine(p, inner),
	}

	total := p.Weight.Mul(decimal.NewFromInt(int64(p.Quantity)))
	weight := []string{
		NameStyle.Render("Shelf weight"),
		labelValue("Total on hand", total.StringFixed(2)+" kg", inner),
	}

	sections := []string{
		detailSectionStyle.Width(width).Render(strings.Join(info, "\n")),
		detailSectionStyle.Width(width).Render(strings.Join(stock, "\n")),
		detailSectionStyle.Width(width).Render(strings.Join(weight, "\n")),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// updateDetailViewportContent refreshes the viewport with the selected product.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	p, ok := m.SelectedProduct()
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.detailContent(p))
	m.detailViewport.GotoTop()
}
