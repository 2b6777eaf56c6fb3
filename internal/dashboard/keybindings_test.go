package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSortOrder_String(t *testing.T) {
	tests := []struct {
		order  SortOrder
		expect string
	}{
		{SortByDefault, "default"},
		{SortByName, "name"},
		{SortByQuantity, "quantity"},
		{SortByStatus, "status"},
		{SortOrder(99), "default"}, // Unknown defaults to default
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.order.String())
		})
	}
}

func TestSortOrder_Next(t *testing.T) {
	tests := []struct {
		current SortOrder
		next    SortOrder
	}{
		{SortByDefault, SortByName},
		{SortByName, SortByQuantity},
		{SortByQuantity, SortByStatus},
		{SortByStatus, SortByDefault}, // Wraps around
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			assert.Equal(t, tt.next, tt.current.Next())
		})
	}
}

func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "grid", ViewGrid.String())
	assert.Equal(t, "table", ViewTable.String())
	assert.Equal(t, "detail", ViewDetail.String())
}

func TestKeyMap_Help(t *testing.T) {
	keys := defaultKeyMap()

	assert.Len(t, keys.ShortHelp(), 8)
	assert.Len(t, keys.FullHelp(), 3)
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m, _ := newTestModel(t)
			m, cmd := update(t, m, msg)

			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestHandleKeyMsg_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.showHelp)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
	assert.Equal(t, ViewGrid, m.viewMode)

	m, _ = update(t, m, runeKey('?'))
	m, _ = update(t, m, runeKey('?'))
	assert.False(t, m.showHelp)
}

func TestHandleKeyMsg_GridNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m = resize(t, m, 130, 50) // three cards per row

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 1},
		{runeKey('l'), 2},
		{runeKey('j'), 5},
		{tea.KeyMsg{Type: tea.KeyDown}, 5}, // clamped at the end
		{tea.KeyMsg{Type: tea.KeyUp}, 2},
		{runeKey('h'), 1},
		{runeKey('k'), 0}, // clamped at the start
		{tea.KeyMsg{Type: tea.KeyEnd}, 5},
		{tea.KeyMsg{Type: tea.KeyHome}, 0},
	}

	for _, s := range steps {
		m, _ = update(t, m, s.msg)
		assert.Equal(t, s.want, m.selected, "after %s", s.msg.String())
	}
}

func TestHandleKeyMsg_TableNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m = resize(t, m, 130, 50)

	m, _ = update(t, m, runeKey('t'))
	assert.Equal(t, ViewTable, m.viewMode)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.selected)
	assert.Equal(t, 1, m.table.Cursor())

	m, _ = update(t, m, runeKey('t'))
	assert.Equal(t, ViewGrid, m.viewMode)
}

func TestHandleKeyMsg_SortAndFilter(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runeKey('s'))
	assert.Equal(t, SortByName, m.sortOrder)
	assert.Equal(t, "4", m.Products()[0].ID)

	m, _ = update(t, m, runeKey('f'))
	assert.True(t, m.lowStockOnly)
	assert.Equal(t, []string{"4", "2"}, ids(m.Products()))

	m, _ = update(t, m, runeKey('f'))
	assert.False(t, m.lowStockOnly)
	assert.Len(t, m.Products(), 6)
}

func TestHandleKeyMsg_DetailReturnsToPreviousView(t *testing.T) {
	tests := []struct {
		name  string
		setup []tea.KeyMsg
		want  ViewMode
	}{
		{"from grid", nil, ViewGrid},
		{"from table", []tea.KeyMsg{runeKey('t')}, ViewTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m = resize(t, m, 100, 40)
			for _, msg := range tt.setup {
				m, _ = update(t, m, msg)
			}

			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			assert.Equal(t, ViewDetail, m.viewMode)

			// Navigation keys go to the viewport, not the selection
			m, _ = update(t, m, runeKey('j'))
			assert.Equal(t, ViewDetail, m.viewMode)
			assert.Equal(t, 0, m.selected)

			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
			assert.Equal(t, tt.want, m.viewMode)
		})
	}
}

func TestHandleKeyMsg_EnterWithNoProducts(t *testing.T) {
	m, _ := newTestModel(t)
	m.products = nil

	handled, _ := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.Equal(t, ViewGrid, m.viewMode)
}

func TestHandleKeyMsg_Unhandled(t *testing.T) {
	m, _ := newTestModel(t)

	handled, cmd := m.HandleKeyMsg(runeKey('x'))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}
