package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	progressFilled = '█'
	progressEmpty  = '░'
)

// RenderProgressBar creates a bracketed bar followed by the percentage.
// percent is clamped to 0-100. Output format: [████████░░░░]  67%
func RenderProgressBar(percent float64, width int, color lipgloss.Color) string {
	bar := renderBar(percent, width)
	if bar == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(color)
	return style.Render("["+bar+"]") + fmt.Sprintf(" %3.0f%%", clampPercent(percent))
}

func renderBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}

	filledCount := int((clampPercent(percent) / 100.0) * float64(width))
	emptyCount := width - filledCount

	var sb strings.Builder
	sb.Grow(width * 3)
	for i := 0; i < filledCount; i++ {
		sb.WriteRune(progressFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(progressEmpty)
	}
	return sb.String()
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
