package dashboard

import (
	"regexp"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autostockvision/autostock/internal/inventory"
	"github.com/autostockvision/autostock/internal/telemetry"
)

// stubFeed is a Feed backed by a plain channel.
type stubFeed struct {
	current telemetry.Reading
	ch      chan telemetry.Reading
}

func newStubFeed() *stubFeed {
	return &stubFeed{
		current: telemetry.Reading{Weight: 2.45, Product: telemetry.DefaultProduct},
		ch:      make(chan telemetry.Reading, 1),
	}
}

func (f *stubFeed) Reading() telemetry.Reading         { return f.current }
func (f *stubFeed) Updates() <-chan telemetry.Reading { return f.ch }

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// plainOutput renders without color codes for the duration of the test.
func plainOutput(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func newTestModel(t *testing.T) (Model, *stubFeed) {
	t.Helper()
	feed := newStubFeed()
	m := NewModel(Options{
		Device: telemetry.DefaultDevice(),
		Feed:   feed,
	})
	return m, feed
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func ids(products []inventory.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestNewModel_Defaults(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(m.Products()))
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, SortByDefault, m.sortOrder)
	assert.Equal(t, ViewGrid, m.viewMode)
	assert.Equal(t, telemetry.DefaultScaleCapacity, m.capacity)
	assert.Len(t, m.stats, 4)

	assert.Equal(t, "2.45 kg", m.Reading().WeightDisplay())
	assert.Equal(t, []float64{2.45}, m.history.All())

	p, ok := m.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, "Premium Oats Cereal", p.Name)
}

func TestNewModel_NoFeed(t *testing.T) {
	m := NewModel(Options{})

	assert.Equal(t, 0, m.history.Len())
	assert.Nil(t, waitForReading(nil))
	assert.Equal(t, 6, len(m.Products()))
}

func TestNewModel_LowStockOnly(t *testing.T) {
	m := NewModel(Options{LowStockOnly: true})
	assert.Equal(t, []string{"2", "4"}, ids(m.Products()))
}

func TestWaitForReading(t *testing.T) {
	feed := newStubFeed()
	cmd := waitForReading(feed)
	require.NotNil(t, cmd)

	want := telemetry.Reading{Weight: 2.5, Detecting: true, Tick: 1}
	feed.ch <- want
	assert.Equal(t, readingMsg(want), cmd())

	close(feed.ch)
	assert.Equal(t, feedClosedMsg{}, waitForReading(feed)())
}

func TestModel_Init(t *testing.T) {
	m, _ := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestModel_UpdateReading(t *testing.T) {
	m, _ := newTestModel(t)

	r := telemetry.Reading{
		Weight:    2.47,
		Detecting: true,
		Product:   telemetry.DefaultProduct,
		Tick:      1,
		At:        time.Date(2026, 1, 1, 0, 0, 3, 0, time.UTC),
	}
	m, cmd := update(t, m, readingMsg(r))

	assert.Equal(t, r, m.Reading())
	assert.Equal(t, []float64{2.45, 2.47}, m.history.All())
	assert.NotNil(t, cmd, "should re-subscribe to the feed")
}

func TestModel_UpdateFeedClosed(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, feedClosedMsg{})

	assert.True(t, m.feedClosed)
	assert.Nil(t, cmd)
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m = resize(t, m, 100, 40)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.True(t, m.viewportReady)
	assert.Equal(t, 35, m.detailViewport.Height)

	m = resize(t, m, 60, 3)
	assert.Equal(t, 1, m.detailViewport.Height)
}

func TestModel_LayoutMode(t *testing.T) {
	tests := []struct {
		width  int
		expect LayoutMode
	}{
		{0, LayoutMinimal},
		{79, LayoutMinimal},
		{80, LayoutCompact},
		{119, LayoutCompact},
		{120, LayoutStandard},
		{200, LayoutStandard},
	}

	for _, tt := range tests {
		m := Model{width: tt.width}
		assert.Equal(t, tt.expect, m.LayoutMode(), "width %d", tt.width)
	}
}

func TestModel_cardLayout(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		wantPerRow int
		wantWidth  int
	}{
		{"unknown width", 0, 1, defaultCardWidth},
		{"narrow", 60, 1, maxCardWidth},
		{"very narrow", 20, 1, 20},
		{"compact", 100, 2, 47},
		{"standard", 130, 3, 40},
		{"wide", 300, 3, maxCardWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{width: tt.width}
			perRow, width := m.cardLayout()
			assert.Equal(t, tt.wantPerRow, perRow)
			assert.Equal(t, tt.wantWidth, width)
		})
	}
}

func TestModel_SortOrders(t *testing.T) {
	tests := []struct {
		order SortOrder
		want  []string
	}{
		{SortByDefault, []string{"1", "2", "3", "4", "5", "6"}},
		{SortByName, []string{"4", "5", "2", "6", "1", "3"}},
		{SortByQuantity, []string{"4", "2", "5", "3", "6", "1"}},
		{SortByStatus, []string{"2", "4", "1", "3", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			m, _ := newTestModel(t)
			m.sortOrder = tt.order
			m.refreshProducts()
			assert.Equal(t, tt.want, ids(m.Products()))
		})
	}
}

func TestModel_RefreshKeepsCatalogIntact(t *testing.T) {
	m, _ := newTestModel(t)
	before := ids(m.catalog.All())

	m.sortOrder = SortByName
	m.lowStockOnly = true
	m.refreshProducts()

	assert.Equal(t, before, ids(m.catalog.All()))
	assert.Equal(t, 6, m.catalog.Len())
}

func TestModel_RefreshPreservesSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m.selectIndex(3) // Coffee Beans

	m.sortOrder = SortByName
	m.refreshProducts()

	p, ok := m.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, "4", p.ID)
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, 0, m.table.Cursor())
}

func TestModel_RefreshResetsHiddenSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m.selectIndex(0) // Premium Oats, not low stock

	m.lowStockOnly = true
	m.refreshProducts()

	p, ok := m.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, "2", p.ID)
}

func TestModel_SelectedProduct_Empty(t *testing.T) {
	empty, err := inventory.New(nil)
	require.NoError(t, err)

	m := NewModel(Options{Catalog: empty})
	_, ok := m.SelectedProduct()
	assert.False(t, ok)
	assert.Empty(t, m.Products())
}
