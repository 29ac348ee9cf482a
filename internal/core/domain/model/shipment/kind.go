package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Kind selects the delivery-workflow branch taken after loading. It is fixed
// when the set is created and never changes.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Delivery means the company transports the goods to the customer.
	// Loading completes into InTransit and records a dispatch timestamp.
	Delivery

	// Pickup means the customer collects the goods from the warehouse.
	// Loading completes into ReadyForPickup.
	Pickup
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		Delivery:    "Delivery",
		Pickup:      "Pickup",
	}
}

// Validate checks that the Kind is Delivery or Pickup.
func (k Kind) Validate() error {
	if k != Delivery && k != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
