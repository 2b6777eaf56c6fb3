package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/autostockvision/autostock/internal/dashboard"
	"github.com/autostockvision/autostock/internal/errors"
	"github.com/autostockvision/autostock/internal/inventory"
	"github.com/autostockvision/autostock/internal/ui"
)

// Catalog output formats
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// catalogOptions holds the catalog command's flags.
type catalogOptions struct {
	LowStockOnly bool
	Output       string
}

// catalogOutput is the --json and --output yaml shape of the catalog.
type catalogOutput struct {
	Products []productOutput `json:"products" yaml:"products"`
	Total    int             `json:"total" yaml:"total"`
	LowStock int             `json:"low_stock" yaml:"low_stock"`
}

// productOutput adds the derived stock fields to a product.
type productOutput struct {
	inventory.Product `yaml:",inline"`
	Status            string  `json:"status" yaml:"status"`
	StockLevel        float64 `json:"stock_level" yaml:"stock_level"`
}

func newProductOutput(p inventory.Product) productOutput {
	return productOutput{
		Product:    p,
		Status:     p.Status().String(),
		StockLevel: p.StockLevelPercent(),
	}
}

// catalogCommand prints the product catalog.
func catalogCommand(w io.Writer, opts catalogOptions) error {
	if opts.Output != OutputTable && opts.Output != OutputYAML {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output format '%s'", opts.Output),
			"Use --output table or --output yaml.")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	products := catalog.All()
	if opts.LowStockOnly {
		products = catalog.LowStock()
	}

	out := catalogOutput{
		Products: make([]productOutput, len(products)),
		Total:    catalog.Len(),
		LowStock: len(catalog.LowStock()),
	}
	for i, p := range products {
		out.Products[i] = newProductOutput(p)
	}

	if machineMode {
		return WriteJSONSuccess(w, out)
	}

	if opts.Output == OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return errors.WrapWithCode(err, errors.ErrInventory,
				"Couldn't encode the catalog as YAML",
				"Try --output table or --json instead.")
		}
		return enc.Close()
	}

	renderCatalog(w, products, out)
	return nil
}

// renderCatalog prints the catalog table with a low-stock summary.
func renderCatalog(w io.Writer, products []inventory.Product, out catalogOutput) {
	ui.PrintHeader(w, ui.HeaderInfo{Tagline: ui.AppTagline, Section: "Current Inventory"})

	if len(products) == 0 {
		fmt.Fprintln(w, ui.MutedStyle().Render("No products to show."))
		return
	}

	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = dashboard.ProductRow(p)
	}
	fmt.Fprintln(w, ui.RenderSimpleTable(dashboard.ProductColumns(), rows))
	fmt.Fprintln(w)

	summary := fmt.Sprintf("%d of %d products", len(products), out.Total)
	if out.LowStock > 0 {
		fmt.Fprintf(w, "%s  %s\n", summary,
			ui.WarningStyle().Render(fmt.Sprintf("%s %d low stock", ui.SymbolWarning, out.LowStock)))
	} else {
		fmt.Fprintf(w, "%s  %s\n", summary,
			ui.SuccessStyle().Render(ui.SymbolSuccess+" all in stock"))
	}
}

// catalogShowCommand prints a single product. Without an id it asks the user
// to pick one when attached to a terminal.
func catalogShowCommand(w io.Writer, id string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if id == "" {
		if machineMode || !ui.IsTerminal(os.Stdin) {
			return errors.New(errors.ErrInventory,
				"Which product?",
				"Pass a product id, e.g. autostock catalog show 2")
		}
		id, err = ui.PickProduct("Pick a product", productChoices(catalog.All()))
		if err != nil {
			return err
		}
	}

	p, ok := catalog.Get(id)
	if !ok {
		return errors.New(errors.ErrInventory,
			fmt.Sprintf("No product with id '%s'", id),
			"Run 'autostock catalog' to list product ids.")
	}

	if machineMode {
		return WriteJSONSuccess(w, newProductOutput(p))
	}

	fmt.Fprint(w, renderProduct(p))
	return nil
}

// productChoices turns products into picker entries.
func productChoices(products []inventory.Product) []ui.ProductChoice {
	choices := make([]ui.ProductChoice, len(products))
	for i, p := range products {
		choices[i] = ui.ProductChoice{
			ID:     p.ID,
			Name:   p.Name,
			Detail: fmt.Sprintf("%s - %s", p.Status().Label(), p.QuantityDisplay()),
		}
	}
	return choices
}

// renderProduct renders the product detail block.
func renderProduct(p inventory.Product) string {
	labelStyle := ui.MutedStyle().Width(15)
	statusStyle := ui.SuccessStyle()
	barColor := ui.ColorSuccess
	if p.Status() == inventory.StockLow {
		statusStyle = ui.WarningStyle()
		barColor = ui.ColorWarning
	}

	var b strings.Builder
	b.WriteString(ui.RenderHeader(ui.HeaderInfo{Section: p.Name}))

	field := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	field("ID", p.ID)
	field("Category", p.Category)
	field("Weight", p.WeightDisplay())
	field("Quantity", p.QuantityDisplay())
	field("Min stock", fmt.Sprintf("%d units", p.MinStock))
	field("Status", statusStyle.Render(p.Status().Label()))
	field("Stock level", ui.RenderProgressBar(p.StockLevelPercent(), 20, barColor)+"  "+p.StockLabel())
	field("Last detected", p.LastDetected)
	if p.HasImage() {
		field("Image", lipgloss.NewStyle().Underline(true).Render(p.Image))
	}
	return b.String()
}
