package ui

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/autostockvision/autostock/internal/errors"
)

// ProductChoice is one entry in the product picker.
type ProductChoice struct {
	ID     string
	Name   string
	Detail string // e.g. "Low Stock - 8 units"
}

// Label returns the text shown for the choice.
func (c ProductChoice) Label() string {
	if c.Detail == "" {
		return c.Name
	}
	return c.Name + " - " + c.Detail
}

// PickProduct shows an interactive select and returns the chosen product id.
// A single choice is returned without prompting.
func PickProduct(title string, choices []ProductChoice) (string, error) {
	if len(choices) == 0 {
		return "", errors.New(errors.ErrInventory,
			"No products to pick from",
			"Check the catalog file or drop catalog.file from your config to use the built-in catalog.")
	}
	if len(choices) == 1 {
		return choices[0].ID, nil
	}

	options := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		options[i] = huh.NewOption(c.Label(), c.ID)
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't get your selection",
			"Try again or pass the product id: autostock catalog show <id>")
	}
	return selected, nil
}

// IsTerminal returns true if f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
