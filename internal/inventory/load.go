package inventory

import (
	"fmt"
	"os"

	"github.com/autostockvision/autostock/internal/errors"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a product list.
type catalogFile struct {
	Products []Product `yaml:"products"`
}

// LoadFile reads a YAML product list and builds a catalog from it.
//
//	products:
//	  - id: "1"
//	    name: Premium Oats Cereal
//	    weight: 2.45
//	    quantity: 24
//	    min_stock: 10
//	    category: Food
//	    last_detected: 2 min ago
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInventory,
			"Can't read catalog file "+path,
			"Check that catalog.file in .autostock.yaml points at an existing file.")
	}
	return Parse(data, path)
}

// Parse decodes a YAML product list. source names the input in error messages.
func Parse(data []byte, source string) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInventory,
			"Catalog file "+source+" isn't valid YAML",
			"Check the syntax of the products list.")
	}
	if len(f.Products) == 0 {
		return nil, errors.New(errors.ErrInventory,
			"Catalog file "+source+" has no products",
			"Add at least one entry under 'products:'.")
	}

	for i, p := range f.Products {
		if err := validateProduct(p); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrInventory,
				fmt.Sprintf("Product #%d in %s is invalid", i+1, source),
				"Fix the entry and try again.")
		}
	}

	return New(f.Products)
}

func validateProduct(p Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("id is required")
	case p.Name == "":
		return fmt.Errorf("product '%s': name is required", p.ID)
	case p.Weight.IsNegative():
		return fmt.Errorf("product '%s': weight can't be negative (got %s)", p.ID, p.Weight)
	case p.Quantity < 0:
		return fmt.Errorf("product '%s': quantity can't be negative (got %d)", p.ID, p.Quantity)
	case p.MinStock < 0:
		return fmt.Errorf("product '%s': min_stock can't be negative (got %d)", p.ID, p.MinStock)
	}
	return nil
}
