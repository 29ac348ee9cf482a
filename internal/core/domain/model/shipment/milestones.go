package shipment

import "time"

// Milestone records are immutable snapshots of a completed workflow step.
// Each carries the actor and timestamp the step was recorded with; a nil
// record means the step has not happened yet.

// PackingList records the issued packing-list document.
type PackingList struct {
	Number   string
	IssuedBy string
	IssuedAt time.Time
}

// StockCheck records the availability check outcome. AllAvailable is a
// warning flag, never a blocker: insufficient stock is surfaced for human
// judgment and the workflow proceeds regardless.
type StockCheck struct {
	CheckedBy    string
	CheckedAt    time.Time
	Notes        string
	AllAvailable bool
}

// Schedule is the delivery date and time slot fixed when the customer
// confirmed the quote. StartPacking requires it.
type Schedule struct {
	Date     time.Time
	TimeSlot string
}

// Loading records the pack-and-load step. Driver, Vehicle and DispatchedAt
// are only set for delivery-kind sets.
type Loading struct {
	StartedBy    string
	StartedAt    time.Time
	Driver       string
	Vehicle      string
	Photos       []string
	LoadedAt     *time.Time
	DispatchedAt *time.Time
}

// Handover records the customer acknowledgement that completed the set.
type Handover struct {
	Recipient    string
	SignedBy     string
	SignatureRef string
	VerifiedAt   time.Time
}
