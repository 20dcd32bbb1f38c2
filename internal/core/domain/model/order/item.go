package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Item is one line of an order's item collection. Items are carried as a
// plain serializable struct: the collection is stored as a JSON column and
// travels unmodified between the client, the API, and persistence.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

// Validate checks a single item line.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%g is negative", i.Price))
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", i.Quantity))
	}
	return nil
}

// validateItems checks the whole collection: it must be non-empty and every
// line must be valid.
func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
	}
	return nil
}
