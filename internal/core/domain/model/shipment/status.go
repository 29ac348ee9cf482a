package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment set. The first four
// values belong to the upstream quotation stage; the rest form the delivery
// workflow proper.
//
// Delivery workflow transitions:
//
//	Pending ──> PackingListIssued ──> StockChecked ──> PackingAndLoading ──┬──> InTransit ──────┐
//	                                                                       │                    ├──> Completed
//	                                                                       └──> ReadyForPickup ─┘
//
// The branch after PackingAndLoading is fixed by the set's Kind (delivery vs
// pickup) and never changes. A status only ever moves forward; no operation
// may decrease it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a newly registered set.
	Pending

	// Quoted means a delivery quote has been issued for the set.
	Quoted

	// CustomerConfirmed means the customer accepted the quote and the
	// delivery schedule is fixed. From this point the set counts as
	// "handed off" for sequential gating.
	CustomerConfirmed

	// DeliveryOrderGenerated means a delivery-order identifier has been
	// assigned; the set now participates in delivery-order aggregation.
	DeliveryOrderGenerated

	// PackingListIssued means a packing list document number was issued.
	PackingListIssued

	// StockChecked means warehouse availability was recorded for every item.
	StockChecked

	// PackingAndLoading means the goods are being packed and loaded.
	PackingAndLoading

	// InTransit means a delivery-kind set has been dispatched with a driver.
	InTransit

	// ReadyForPickup means a pickup-kind set awaits customer collection.
	ReadyForPickup

	// Completed means the handover was acknowledged; the goods are on rental.
	// Terminal state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "Unknown",
		Pending:                "Pending",
		Quoted:                 "Quoted",
		CustomerConfirmed:      "CustomerConfirmed",
		DeliveryOrderGenerated: "DeliveryOrderGenerated",
		PackingListIssued:      "PackingListIssued",
		StockChecked:           "StockChecked",
		PackingAndLoading:      "PackingAndLoading",
		InTransit:              "InTransit",
		ReadyForPickup:         "ReadyForPickup",
		Completed:              "Completed",
	}
}

// getStatusPriorities returns the fixed total order used to pick the most
// advanced status among sets sharing a delivery order. Statuses outside the
// delivery workflow rank equal to Pending; InTransit and ReadyForPickup are
// deliberately tied.
func getStatusPriorities() map[Status]int {
	return map[Status]int{
		Pending:           0,
		PackingListIssued: 1,
		StockChecked:      2,
		PackingAndLoading: 3,
		InTransit:         4,
		ReadyForPickup:    4,
		Completed:         5,
	}
}

// Validate checks that the Status is one of the defined values.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Normalize maps upstream quotation-stage statuses to Pending so they can be
// compared under the delivery-workflow priority table. Workflow statuses are
// returned unchanged.
func (s Status) Normalize() Status {
	if _, ok := getStatusPriorities()[s]; ok {
		return s
	}
	return Pending
}

// Priority returns the rank of the status under the fixed total order:
//
//	Completed > InTransit = ReadyForPickup > PackingAndLoading > StockChecked > PackingListIssued > Pending
//
// Statuses outside the table are normalized to Pending before comparison.
func (s Status) Priority() int {
	return getStatusPriorities()[s.Normalize()]
}

// HandedOff reports whether the set has been handed off to the customer-
// facing delivery flow: the customer confirmed, a delivery order exists, or
// any later workflow status was reached. Sequential gating of sibling sets
// keys off this.
func (s Status) HandedOff() bool {
	return s >= CustomerConfirmed && s.Validate() == nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed
}

func invalidTransition(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action),
	)
}

// Quote transitions Pending -> Quoted.
func (s Status) Quote() (Status, error) {
	if s != Pending {
		return 0, invalidTransition(s, "quote")
	}
	return Quoted, nil
}

// ConfirmByCustomer transitions Quoted -> CustomerConfirmed.
func (s Status) ConfirmByCustomer() (Status, error) {
	if s != Quoted {
		return 0, invalidTransition(s, "confirm")
	}
	return CustomerConfirmed, nil
}

// GenerateDeliveryOrder transitions CustomerConfirmed -> DeliveryOrderGenerated.
func (s Status) GenerateDeliveryOrder() (Status, error) {
	if s != CustomerConfirmed {
		return 0, invalidTransition(s, "generate a delivery order for")
	}
	return DeliveryOrderGenerated, nil
}

// IssuePackingList transitions any pre-workflow status to PackingListIssued.
// Re-issuing while already in PackingListIssued is permitted: the document
// number may be regenerated but the status does not change.
func (s Status) IssuePackingList() (Status, error) {
	if s == PackingListIssued {
		return PackingListIssued, nil
	}
	if s.Normalize() != Pending || s.Validate() != nil {
		return 0, invalidTransition(s, "issue a packing list for")
	}
	return PackingListIssued, nil
}

// CheckStock transitions PackingListIssued -> StockChecked.
func (s Status) CheckStock() (Status, error) {
	if s != PackingListIssued {
		return 0, invalidTransition(s, "check stock for")
	}
	return StockChecked, nil
}

// StartPacking transitions StockChecked -> PackingAndLoading.
func (s Status) StartPacking() (Status, error) {
	if s != StockChecked {
		return 0, invalidTransition(s, "start packing for")
	}
	return PackingAndLoading, nil
}

// CompleteLoading transitions PackingAndLoading to the branch fixed by the
// set's kind: InTransit for deliveries, ReadyForPickup for pickups.
func (s Status) CompleteLoading(kind Kind) (Status, error) {
	if s != PackingAndLoading {
		return 0, invalidTransition(s, "complete loading for")
	}
	if kind == Pickup {
		return ReadyForPickup, nil
	}
	return InTransit, nil
}

// CompleteHandover transitions InTransit or ReadyForPickup -> Completed.
func (s Status) CompleteHandover() (Status, error) {
	if s != InTransit && s != ReadyForPickup {
		return 0, invalidTransition(s, "complete handover for")
	}
	return Completed, nil
}
