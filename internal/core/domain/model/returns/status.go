package returns

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a return order. Two branches
// exist, selected at approval time by the collection method:
//
//	courier:  Requested ──> PickupScheduled ──> DriverRecording ──> InTransit ──> ReceivedAtWarehouse ─┐
//	self:     Requested ──> Approved ──────────────────────────────────────────> ReceivedAtWarehouse ─┤
//	                                                                                                  v
//	                 UnderInspection ──> SortingComplete ──> CustomerNotified ──> Completed
//
// Completed is terminal; no operation is accepted afterwards. A status only
// ever moves forward.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Requested is the initial status of a submitted return request.
	Requested

	// Approved means a self-return was accepted; the customer will bring the
	// goods to the warehouse.
	Approved

	// PickupScheduled means a courier collection was approved with a pickup
	// date and time slot.
	PickupScheduled

	// DriverRecording means the pickup driver is confirmed and origin
	// evidence is still outstanding.
	DriverRecording

	// InTransit means the goods are on their way back to the warehouse.
	InTransit

	// ReceivedAtWarehouse means the goods arrived and receipt evidence was
	// captured.
	ReceivedAtWarehouse

	// UnderInspection means every item has an assigned condition and a
	// goods-receipt note was generated.
	UnderInspection

	// SortingComplete means the optional return-condition form was either
	// generated or explicitly skipped.
	SortingComplete

	// CustomerNotified means the customer was informed of the outcome.
	CustomerNotified

	// Completed means inventory and statement of account were updated.
	// Terminal state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		Requested:           "Requested",
		Approved:            "Approved",
		PickupScheduled:     "PickupScheduled",
		DriverRecording:     "DriverRecording",
		InTransit:           "InTransit",
		ReceivedAtWarehouse: "ReceivedAtWarehouse",
		UnderInspection:     "UnderInspection",
		SortingComplete:     "SortingComplete",
		CustomerNotified:    "CustomerNotified",
		Completed:           "Completed",
	}
}

// Validate checks that the Status is one of the defined values.
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

// Approve transitions Requested to the branch head selected by the
// collection method: PickupScheduled for courier, Approved for self-return.
func (s Status) Approve(method CollectionMethod) (Status, error) {
	if s != Requested {
		return 0, invalidTransition(s, "approve")
	}
	if method == Courier {
		return PickupScheduled, nil
	}
	return Approved, nil
}

// ConfirmPickup transitions PickupScheduled -> DriverRecording.
// Courier branch only.
func (s Status) ConfirmPickup() (Status, error) {
	if s != PickupScheduled {
		return 0, invalidTransition(s, "confirm pickup for")
	}
	return DriverRecording, nil
}

// RecordAtOrigin transitions DriverRecording -> InTransit. Courier branch only.
func (s Status) RecordAtOrigin() (Status, error) {
	if s != DriverRecording {
		return 0, invalidTransition(s, "record origin evidence for")
	}
	return InTransit, nil
}

// ReceiveAtWarehouse converges both branches on ReceivedAtWarehouse: from
// InTransit on the courier branch, from Approved on the self-return branch.
func (s Status) ReceiveAtWarehouse() (Status, error) {
	if s != InTransit && s != Approved {
		return 0, invalidTransition(s, "receive at warehouse")
	}
	return ReceivedAtWarehouse, nil
}

// CompleteInspection transitions ReceivedAtWarehouse -> UnderInspection.
func (s Status) CompleteInspection() (Status, error) {
	if s != ReceivedAtWarehouse {
		return 0, invalidTransition(s, "complete inspection for")
	}
	return UnderInspection, nil
}

// FinalizeSorting transitions UnderInspection -> SortingComplete.
func (s Status) FinalizeSorting() (Status, error) {
	if s != UnderInspection {
		return 0, invalidTransition(s, "finalize sorting for")
	}
	return SortingComplete, nil
}

// NotifyCustomer transitions SortingComplete -> CustomerNotified.
func (s Status) NotifyCustomer() (Status, error) {
	if s != SortingComplete {
		return 0, invalidTransition(s, "notify the customer for")
	}
	return CustomerNotified, nil
}

// Complete transitions CustomerNotified -> Completed.
func (s Status) Complete() (Status, error) {
	if s != CustomerNotified {
		return 0, invalidTransition(s, "complete")
	}
	return Completed, nil
}
