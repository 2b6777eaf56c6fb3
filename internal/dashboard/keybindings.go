package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SortOrder defines how product cards are ordered.
type SortOrder int

const (
	SortByDefault  SortOrder = iota // catalog order
	SortByName                      // alphabetical
	SortByQuantity                  // fewest units first
	SortByStatus                    // low stock first, then catalog order
)

// String returns a human-readable label for the sort order.
func (s SortOrder) String() string {
	switch s {
	case SortByName:
		return "name"
	case SortByQuantity:
		return "quantity"
	case SortByStatus:
		return "status"
	default:
		return "default"
	}
}

// Next cycles to the next sort order.
func (s SortOrder) Next() SortOrder {
	return SortOrder((int(s) + 1) % 4)
}

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewTable
	ViewDetail
)

// String returns the view name.
func (v ViewMode) String() string {
	switch v {
	case ViewTable:
		return "table"
	case ViewDetail:
		return "detail"
	default:
		return "grid"
	}
}

// keyMap holds every dashboard binding. It implements help.KeyMap.
type keyMap struct {
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	First  key.Binding
	Last   key.Binding
	Sort   key.Binding
	Filter key.Binding
	Table  key.Binding
	Expand key.Binding
	Back   key.Binding
	Help   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first product"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last product"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "low stock only"),
		),
		Table: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "table view"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Up, k.Down, k.Sort, k.Filter, k.Table, k.Expand, k.Help}
}

// FullHelp returns the bindings shown in the help overlay, grouped in columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.First, k.Last},
		{k.Sort, k.Filter, k.Table, k.Expand, k.Back},
		{k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input and updates the model.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key.Matches(msg, m.keys.Back) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.viewMode == ViewDetail {
			m.viewMode = m.returnMode
		} else {
			m.viewMode = ViewGrid
		}
		return true, nil
	}

	// The detail viewport owns scrolling keys.
	if m.viewMode == ViewDetail {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keys.Sort):
		m.sortOrder = m.sortOrder.Next()
		m.refreshProducts()
		return true, nil

	case key.Matches(msg, m.keys.Filter):
		m.lowStockOnly = !m.lowStockOnly
		m.refreshProducts()
		return true, nil

	case key.Matches(msg, m.keys.Table):
		if m.viewMode == ViewTable {
			m.viewMode = ViewGrid
		} else {
			m.viewMode = ViewTable
		}
		return true, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-m.rowStride())
		return true, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(m.rowStride())
		return true, nil

	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
		return true, nil

	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
		return true, nil

	case key.Matches(msg, m.keys.First):
		m.selectIndex(0)
		return true, nil

	case key.Matches(msg, m.keys.Last):
		m.selectIndex(len(m.products) - 1)
		return true, nil

	case key.Matches(msg, m.keys.Expand):
		if len(m.products) > 0 {
			m.returnMode = m.viewMode
			m.viewMode = ViewDetail
			m.updateDetailViewportContent()
		}
		return true, nil
	}

	return false, nil
}

// rowStride is how far up/down moves: a full row in the grid, one row in the table.
func (m Model) rowStride() int {
	if m.viewMode == ViewTable {
		return 1
	}
	perRow, _ := m.cardLayout()
	return perRow
}

// moveSelection shifts the selection by delta, staying in bounds.
func (m *Model) moveSelection(delta int) {
	m.selectIndex(m.selected + delta)
}

// selectIndex selects the product at i, clamped to the visible list.
func (m *Model) selectIndex(i int) {
	if len(m.products) == 0 {
		m.selected = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(m.products)-1 {
		i = len(m.products) - 1
	}
	m.selected = i
	m.table.SetCursor(i)
}
