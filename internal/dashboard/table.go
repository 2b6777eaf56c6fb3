package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/autostockvision/autostock/internal/inventory"
	"github.com/autostockvision/autostock/internal/ui"
)

// ProductColumns are the columns of the product table, shared with the
// catalog command.
func ProductColumns() []ui.TableColumn {
	return productColumns()
}

func productColumns() []ui.TableColumn {
	return []ui.TableColumn{
		{Title: "ID", Width: 4},
		{Title: "Product", Width: 24},
		{Title: "Category", Width: 12},
		{Title: "Weight", Width: 9},
		{Title: "Qty", Width: 5},
		{Title: "Stock", Width: 7},
		{Title: "Status", Width: 10},
	}
}

// ProductRow renders one product as table cells.
func ProductRow(p inventory.Product) []string {
	return []string{
		p.ID,
		p.Name,
		p.Category,
		p.WeightDisplay(),
		fmt.Sprintf("%d", p.Quantity),
		p.StockLabel(),
		p.Status().Label(),
	}
}

func productRows(products []inventory.Product) []table.Row {
	rows := make([]table.Row, len(products))
	for i, p := range products {
		rows[i] = table.Row(ProductRow(p))
	}
	return rows
}

// renderTable renders the interactive product table.
func (m Model) renderTable() string {
	if len(m.products) == 0 {
		return LabelStyle.Render("No products match the current filter")
	}
	return m.table.View()
}
