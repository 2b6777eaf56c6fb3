package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/autostockvision/autostock/internal/telemetry"
)

// Weight panel layout constants
const (
	weightGraphHeight = 3
	minPanelWidth     = 30
)

// panelWidths returns the widths of the weight and device panels.
// Under the compact breakpoint both panels take the full width and stack.
func (m Model) panelWidths() (weight, device int, stacked bool) {
	if m.width == 0 {
		return 56, 34, false
	}
	if m.LayoutMode() == LayoutMinimal {
		w := m.width - cardChrome
		if w < minPanelWidth {
			w = minPanelWidth
		}
		return w, w, true
	}

	weight = m.width*3/5 - cardChrome
	device = m.width - weight - 2*cardChrome
	if device < minPanelWidth {
		device = minPanelWidth
	}
	return weight, device, false
}

// renderPanels renders the weight monitor next to the device status card.
func (m Model) renderPanels() string {
	weightWidth, deviceWidth, stacked := m.panelWidths()
	weight := m.renderWeightPanel(weightWidth)
	device := m.renderDevicePanel(deviceWidth)
	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, weight, device)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, weight, device)
}

// renderDetectionBadge renders the spinner and "Detecting..." badge while a
// detection window is open, otherwise the "Standby" badge.
func (m Model) renderDetectionBadge() string {
	if m.reading.Detecting {
		return m.spinner.View() + " " + BadgeDetectingStyle.Render(m.reading.Badge())
	}
	return BadgeStandbyStyle.Render(m.reading.Badge())
}

// renderWeightPanel renders the live weight monitor.
func (m Model) renderWeightPanel(width int) string {
	innerWidth := width - 2
	percent := m.reading.GaugePercent(m.capacity)

	title := TitleStyle.Render("Live Weight Monitor")
	badge := m.renderDetectionBadge()
	gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}

	product := m.reading.Product
	if product == "" {
		product = "No product"
	}

	var lines []string
	lines = append(lines, title+strings.Repeat(" ", gap)+badge)
	if m.feedClosed {
		lines = append(lines, SubtitleStyle.Render("Feed stopped"))
	}
	lines = append(lines,
		"",
		BigValueStyle.Foreground(GaugeColor(percent)).Render(m.reading.WeightDisplay()),
		LabelStyle.Render("Detected: ")+ValueStyle.Render(truncateWithEllipsis(product, innerWidth-10)),
		"",
		RenderGradientBar(innerWidth, percent),
		m.renderGaugeScale(innerWidth),
		"",
		RenderBrailleSparkline(m.history.Last(innerWidth*2), innerWidth, weightGraphHeight, ColorGraph),
		renderCardDivider(innerWidth),
		labelValue("Min weight", telemetry.FormatWeight(m.device.MinWeight), innerWidth),
		labelValue("Max capacity", telemetry.FormatWeight(m.device.MaxCapacity), innerWidth),
		labelValue("Accuracy", "±"+telemetry.FormatWeight(m.device.Accuracy), innerWidth),
	)

	return PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderGaugeScale renders "0 kg" under the left end of the gauge and the
// capacity under the right end.
func (m Model) renderGaugeScale(width int) string {
	left := "0 kg"
	right := fmt.Sprintf("%g kg", m.capacity)
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return SubtitleStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// renderDevicePanel renders the static device status card.
func (m Model) renderDevicePanel(width int) string {
	innerWidth := width - 2

	online := BadgeOnlineStyle.Render(IndicatorOnline + " Online")
	if !m.device.Online {
		online = SubtitleStyle.Render(IndicatorOffline + " Offline")
	}

	lines := []string{
		TitleStyle.Render("Device Status"),
		renderCardDivider(innerWidth),
		statusLine("Scale", online, innerWidth),
		labelValue("Camera", m.device.Camera, innerWidth),
		labelValue("Load cell", m.device.LoadCell, innerWidth),
		labelValue("AI model", m.device.ModelVersion, innerWidth),
	}

	return PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// statusLine is labelValue for an already styled value.
func statusLine(label, styled string, width int) string {
	left := LabelStyle.Render(label)
	gap := width - lipgloss.Width(left) - lipgloss.Width(styled)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + styled
}
