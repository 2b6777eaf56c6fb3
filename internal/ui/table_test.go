package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTableStyle(t *testing.T) {
	style := DefaultTableStyle()

	testStr := "test"
	assert.NotPanics(t, func() {
		_ = style.Header.Render(testStr)
		_ = style.Cell.Render(testStr)
		_ = style.Selected.Render(testStr)
		_ = style.Border.Render(testStr)
	})
}

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
		{Title: "Status", Width: 10},
	}
	rows := []table.Row{
		{"Premium Oats Cereal", "In Stock"},
		{"Organic Milk", "Low Stock"},
	}

	tbl := NewTable(columns, rows, 0, false)

	view := tbl.View()
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Status")
	assert.Contains(t, view, "Premium Oats Cereal")
	assert.Contains(t, view, "Organic Milk")
}

func TestNewTable_FixedHeight(t *testing.T) {
	columns := []TableColumn{{Title: "Name", Width: 10}}
	rows := []table.Row{{"a"}, {"b"}, {"c"}, {"d"}}

	tbl := NewTable(columns, rows, 2, true)

	assert.True(t, tbl.Focused())
	assert.Len(t, tbl.Rows(), 4)
}

func TestNewTable_EmptyRows(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
	}

	tbl := NewTable(columns, []table.Row{}, 0, false)

	assert.Contains(t, tbl.View(), "Name")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "ID", Width: 4},
		{Title: "Product", Width: 22},
	}
	rows := [][]string{
		{"1", "Premium Oats Cereal"},
		{"2", "Organic Milk"},
	}

	output := RenderSimpleTable(columns, rows)

	assert.Contains(t, output, "Product")
	assert.Contains(t, output, "Premium Oats Cereal")
	assert.Contains(t, output, "Organic Milk")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	output := RenderSimpleTable([]TableColumn{{Title: "Name", Width: 20}}, [][]string{})
	assert.Empty(t, output)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, 6, lipgloss.Width(PadRight(SuccessStyle().Render("ok"), 6)))
}
