package dashboard

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/autostockvision/autostock/internal/inventory"
	"github.com/autostockvision/autostock/internal/telemetry"
	"github.com/autostockvision/autostock/internal/ui"
)

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 80 columns: one card per row, panels stacked
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 80-120 columns: two cards per row
	LayoutCompact
	// LayoutStandard is for terminals 120+ columns: three cards per row
	LayoutStandard
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
)

// Card sizing
const (
	defaultCardWidth = 34
	maxCardWidth     = 48
	cardChrome       = 3 // border + right margin
)

// Feed is the live telemetry source the dashboard subscribes to.
// *telemetry.Runner satisfies it.
type Feed interface {
	Reading() telemetry.Reading
	Updates() <-chan telemetry.Reading
}

// Options configures a dashboard model.
type Options struct {
	Catalog       *inventory.Catalog
	Stats         []inventory.StatEntry
	Device        telemetry.DeviceStatus
	Feed          Feed
	ScaleCapacity float64 // kg at which the weight gauge is full
	HistorySize   int     // weight samples kept for the sparkline
	LowStockOnly  bool    // start with the low-stock filter on
}

// Model is the Bubble Tea model for the inventory dashboard.
type Model struct {
	catalog  *inventory.Catalog
	stats    []inventory.StatEntry
	device   telemetry.DeviceStatus
	feed     Feed
	capacity float64

	reading    telemetry.Reading
	history    *History
	feedClosed bool

	products     []inventory.Product // sorted, filtered view of the catalog
	selected     int
	sortOrder    SortOrder
	lowStockOnly bool
	viewMode     ViewMode
	returnMode   ViewMode // view to return to when leaving detail
	showHelp     bool
	quitting     bool

	width  int
	height int

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	table   table.Model

	// Detail view viewport for scrollable content
	detailViewport viewport.Model
	viewportReady  bool
}

// readingMsg carries a new reading from the feed.
type readingMsg telemetry.Reading

// feedClosedMsg signals that the feed will send no more readings.
type feedClosedMsg struct{}

// NewModel creates a dashboard model. The catalog is never modified.
func NewModel(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = inventory.Default()
	}
	if opts.Stats == nil {
		opts.Stats = inventory.DefaultStats()
	}
	if opts.ScaleCapacity <= 0 {
		opts.ScaleCapacity = telemetry.DefaultScaleCapacity
	}

	m := Model{
		catalog:      opts.Catalog,
		stats:        opts.Stats,
		device:       opts.Device,
		feed:         opts.Feed,
		capacity:     opts.ScaleCapacity,
		history:      NewHistory(opts.HistorySize),
		lowStockOnly: opts.LowStockOnly,
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      ui.NewBubblesSpinner(ColorAccent),
		table:        ui.NewTable(productColumns(), nil, 0, true),
	}

	if m.feed != nil {
		m.reading = m.feed.Reading()
		m.history.Push(m.reading.Weight)
	}

	m.refreshProducts()
	return m
}

// Init subscribes to the feed and starts the badge spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForReading(m.feed),
		m.spinner.Tick,
	)
}

// waitForReading blocks until the feed publishes the next reading.
// A closed feed ends the subscription.
func waitForReading(feed Feed) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-feed.Updates()
		if !ok {
			return feedClosedMsg{}
		}
		return readingMsg(r)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		if m.viewMode == ViewDetail {
			var cmd tea.Cmd
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		m.table.SetWidth(m.width)
		m.table.SetHeight(m.tableHeight())

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case readingMsg:
		m.reading = telemetry.Reading(msg)
		m.history.Push(m.reading.Weight)
		return m, waitForReading(m.feed)

	case feedClosedMsg:
		m.feedClosed = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderDashboard()
}

// Reading returns the latest telemetry reading shown.
func (m Model) Reading() telemetry.Reading {
	return m.reading
}

// Products returns the products currently shown, in display order.
func (m Model) Products() []inventory.Product {
	out := make([]inventory.Product, len(m.products))
	copy(out, m.products)
	return out
}

// SelectedProduct returns the highlighted product.
func (m Model) SelectedProduct() (inventory.Product, bool) {
	if m.selected >= 0 && m.selected < len(m.products) {
		return m.products[m.selected], true
	}
	return inventory.Product{}, false
}

// LayoutMode returns the current layout mode based on terminal width.
func (m Model) LayoutMode() LayoutMode {
	switch {
	case m.width >= BreakpointStandard:
		return LayoutStandard
	case m.width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// cardLayout returns how many product cards fit per row and their width.
func (m Model) cardLayout() (perRow, width int) {
	if m.width == 0 {
		return 1, defaultCardWidth
	}

	switch m.LayoutMode() {
	case LayoutStandard:
		perRow = 3
	case LayoutCompact:
		perRow = 2
	default:
		perRow = 1
	}

	width = m.width/perRow - cardChrome
	if width > maxCardWidth {
		width = maxCardWidth
	}
	if width < 20 {
		width = 20
	}
	return perRow, width
}

// tableHeight is the number of table rows that fit below the panels.
func (m Model) tableHeight() int {
	h := m.height / 2
	if h < 5 {
		h = 5
	}
	if n := len(m.products) + 1; h > n {
		h = n
	}
	return h
}

// refreshProducts rebuilds the visible product list from the catalog,
// keeping the same product selected when it is still visible.
func (m *Model) refreshProducts() {
	selectedID := ""
	if p, ok := m.SelectedProduct(); ok {
		selectedID = p.ID
	}

	var products []inventory.Product
	if m.lowStockOnly {
		products = m.catalog.LowStock()
	} else {
		products = m.catalog.All()
	}

	switch m.sortOrder {
	case SortByName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortByQuantity:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Quantity < products[j].Quantity
		})
	case SortByStatus:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Status() == inventory.StockLow && products[j].Status() != inventory.StockLow
		})
	}

	m.products = products
	m.table.SetRows(productRows(products))
	m.table.SetHeight(m.tableHeight())

	m.selected = 0
	for i, p := range products {
		if p.ID == selectedID {
			m.selected = i
			break
		}
	}
	m.selectIndex(m.selected)
}
