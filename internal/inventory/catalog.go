package inventory

import (
	"fmt"

	"github.com/autostockvision/autostock/internal/errors"
)

// Catalog is an immutable, ordered product list with lookup by ID.
type Catalog struct {
	products []Product
	index    map[string]int
}

// New builds a catalog from products, keeping their order.
// The slice is copied; later changes to it do not affect the catalog.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if _, dup := c.index[p.ID]; dup {
			return nil, errors.New(errors.ErrInventory,
				fmt.Sprintf("Duplicate product id '%s'", p.ID),
				"Give every product a unique id.")
		}
		c.index[p.ID] = i
	}
	return c, nil
}

// Default returns the built-in seed catalog.
func Default() *Catalog {
	c, err := New(seedProducts())
	if err != nil {
		// Seed data is static; a duplicate here is a programming error.
		panic(err)
	}
	return c
}

// All returns a copy of every product in catalog order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Get looks up a product by ID.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// LowStock returns the products whose status is StockLow, in catalog order.
func (c *Catalog) LowStock() []Product {
	var out []Product
	for _, p := range c.products {
		if p.Status() == StockLow {
			out = append(out, p)
		}
	}
	return out
}
