package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// LineItem is one (item name, quantity) entry on a fulfillment set's
// manifest. AvailableStock is filled in from the stock oracle at
// stock-check time and defaults to zero before that.
type LineItem struct {
	name           string
	quantity       int
	availableStock int
}

// NewLineItem creates a manifest entry. Name must be non-empty and quantity
// positive.
func NewLineItem(name string, quantity int) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return LineItem{name: name, quantity: quantity}, nil
}

// RestoreLineItem reconstructs a manifest entry from persistence, including
// the availability recorded at the last stock check.
func RestoreLineItem(name string, quantity, availableStock int) (LineItem, error) {
	item, err := NewLineItem(name, quantity)
	if err != nil {
		return LineItem{}, err
	}
	item.availableStock = availableStock
	return item, nil
}

// Name returns the item name, the merge key during aggregation.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// AvailableStock returns the availability recorded at the last stock check.
func (i LineItem) AvailableStock() int {
	return i.availableStock
}

// IsAvailable reports whether recorded stock covers the ordered quantity.
func (i LineItem) IsAvailable() bool {
	return i.availableStock >= i.quantity
}

func (i LineItem) withAvailableStock(available int) LineItem {
	i.availableStock = available
	return i
}
