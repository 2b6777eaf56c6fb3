package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		filled  int
		label   string
	}{
		{"empty", 0, 10, 0, "  0%"},
		{"half", 50, 10, 5, " 50%"},
		{"full", 100, 10, 10, "100%"},
		{"clamps above", 140, 10, 10, "100%"},
		{"clamps below", -5, 10, 0, "  0%"},
		{"stock level", 80, 20, 16, " 80%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgressBar(tt.percent, tt.width, ColorSuccess))

			assert.True(t, strings.HasPrefix(got, "["))
			assert.Equal(t, tt.filled, strings.Count(got, "█"))
			assert.Equal(t, tt.width-tt.filled, strings.Count(got, "░"))
			assert.True(t, strings.HasSuffix(got, tt.label), "got %q", got)
		})
	}
}
