package returns

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ReturnItem is one line of a return order: a rented item coming back, the
// quantity actually returned, and the condition assigned at inspection.
type ReturnItem struct {
	id               kernel.UUID
	name             string
	category         string
	quantity         int
	returnedQuantity int
	condition        Condition
	notes            string
}

// NewReturnItem creates a return line in ConditionUnset state. Returned
// quantity defaults to the declared quantity and is corrected at inspection.
func NewReturnItem(id kernel.UUID, name, category string, quantity int) (ReturnItem, error) {
	if err := id.Validate(); err != nil {
		return ReturnItem{}, err
	}
	if name == "" {
		return ReturnItem{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return ReturnItem{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return ReturnItem{
		id:               id,
		name:             name,
		category:         category,
		quantity:         quantity,
		returnedQuantity: quantity,
		condition:        ConditionUnset,
	}, nil
}

// RestoreReturnItem reconstructs a return line from persistence, including
// any assessment already recorded.
func RestoreReturnItem(
	id kernel.UUID,
	name, category string,
	quantity, returnedQuantity int,
	condition Condition,
	notes string,
) (ReturnItem, error) {
	item, err := NewReturnItem(id, name, category, quantity)
	if err != nil {
		return ReturnItem{}, err
	}
	if condition != ConditionUnset {
		if err = condition.Validate(); err != nil {
			return ReturnItem{}, err
		}
	}
	item.returnedQuantity = returnedQuantity
	item.condition = condition
	item.notes = notes
	return item, nil
}

// ID returns the line identifier, the key used to assign assessments.
func (i ReturnItem) ID() kernel.UUID { return i.id }

// Name returns the item name.
func (i ReturnItem) Name() string { return i.name }

// Category returns the item category.
func (i ReturnItem) Category() string { return i.category }

// Quantity returns the declared quantity on the return request.
func (i ReturnItem) Quantity() int { return i.quantity }

// ReturnedQuantity returns the quantity actually received back.
func (i ReturnItem) ReturnedQuantity() int { return i.returnedQuantity }

// Condition returns the inspected condition, ConditionUnset before inspection.
func (i ReturnItem) Condition() Condition { return i.condition }

// Notes returns free-form inspection notes for this line.
func (i ReturnItem) Notes() string { return i.notes }

// IsAssessed reports whether a condition has been assigned.
func (i ReturnItem) IsAssessed() bool { return i.condition != ConditionUnset }

func (i ReturnItem) withAssessment(a Assessment) (ReturnItem, error) {
	if err := a.Condition.Validate(); err != nil {
		return ReturnItem{}, err
	}
	if a.ReturnedQuantity < 0 || a.ReturnedQuantity > i.quantity {
		return ReturnItem{}, errs.NewValueIsOutOfRangeError("returned quantity",
			a.ReturnedQuantity, 0, i.quantity)
	}
	i.condition = a.Condition
	i.returnedQuantity = a.ReturnedQuantity
	i.notes = a.Notes
	return i, nil
}

// Assessment is the per-item outcome recorded during inspection.
type Assessment struct {
	Condition        Condition
	ReturnedQuantity int
	Notes            string
}
