package ui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderSparkline_Empty(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		width int
	}{
		{"nil data", nil, 10},
		{"empty data", []float64{}, 10},
		{"zero width", []float64{1, 2}, 0},
		{"negative width", []float64{1, 2}, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, RenderSparkline(tt.data, tt.width, ColorInfo))
		})
	}
}

func TestRenderSparkline_Levels(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		width  int
		expect string
	}{
		{"flat series uses middle level", []float64{2.45, 2.45, 2.45}, 10, "▅▅▅"},
		{"increasing spans the range", []float64{2.40, 2.47, 2.54}, 10, "▁▄█"},
		{"decreasing", []float64{3, 2, 1}, 10, "█▄▁"},
		{"keeps the most recent points", []float64{9, 9, 1, 2}, 2, "▁█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderSparkline(tt.data, tt.width, ColorInfo))
			assert.Equal(t, tt.expect, got)
		})
	}
}
