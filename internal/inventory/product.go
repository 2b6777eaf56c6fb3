// Package inventory holds the static product catalog and the stats summary
// shown on the dashboard. Both are seeded once and never mutated.
package inventory

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// stockHeadroom is added to MinStock to get the stock bar's full-scale value.
const stockHeadroom = 20

// StockStatus classifies a product's quantity against its minimum stock.
type StockStatus int

const (
	StockGood StockStatus = iota
	StockLow
)

// String returns the short status name used in machine output.
func (s StockStatus) String() string {
	switch s {
	case StockLow:
		return "low"
	case StockGood:
		return "good"
	default:
		return "unknown"
	}
}

// Label returns the badge text shown on a product card.
func (s StockStatus) Label() string {
	if s == StockLow {
		return "Low Stock"
	}
	return "In Stock"
}

// Product is a single catalog entry.
type Product struct {
	ID           string          `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	Weight       decimal.Decimal `yaml:"weight" json:"weight"` // kilograms
	Quantity     int             `yaml:"quantity" json:"quantity"`
	MinStock     int             `yaml:"min_stock" json:"min_stock"`
	Category     string          `yaml:"category" json:"category"`
	LastDetected string          `yaml:"last_detected" json:"last_detected"`
	Image        string          `yaml:"image,omitempty" json:"image,omitempty"`
}

// Status returns StockLow when quantity is at or below the minimum.
func (p Product) Status() StockStatus {
	if p.Quantity <= p.MinStock {
		return StockLow
	}
	return StockGood
}

// StockCapacity is the denominator of the stock level bar.
func (p Product) StockCapacity() int {
	return p.MinStock + stockHeadroom
}

// StockLevelPercent returns quantity as a percentage of StockCapacity, capped at 100.
func (p Product) StockLevelPercent() float64 {
	capacity := p.StockCapacity()
	if capacity <= 0 {
		return 100
	}
	return math.Min(float64(p.Quantity)/float64(capacity)*100, 100)
}

// StockLabel renders the "quantity/capacity" caption of the stock bar.
func (p Product) StockLabel() string {
	return fmt.Sprintf("%d/%d", p.Quantity, p.StockCapacity())
}

// WeightDisplay renders the weight in its shortest decimal form with a unit.
func (p Product) WeightDisplay() string {
	return p.Weight.String() + " kg"
}

// QuantityDisplay renders the quantity with a unit.
func (p Product) QuantityDisplay() string {
	return fmt.Sprintf("%d units", p.Quantity)
}

// HasImage reports whether the product carries an image reference.
func (p Product) HasImage() bool {
	return p.Image != ""
}
