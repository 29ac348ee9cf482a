package shipment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrFulfillmentSetIsNotConstructed is returned when a FulfillmentSet was
	// not created through NewFulfillmentSet or RestoreFulfillmentSet.
	ErrFulfillmentSetIsNotConstructed = errors.New(
		"FulfillmentSet must be created via NewFulfillmentSet or RestoreFulfillmentSet")

	// ErrEmptyManifest is returned when a packing list is requested for a set
	// with no line items.
	ErrEmptyManifest = errors.New("packing list requires at least one line item")

	// ErrMissingSchedule is returned when packing starts without a confirmed
	// delivery date and time slot.
	ErrMissingSchedule = errors.New("confirmed delivery date and time slot are required before packing")

	// ErrMissingDriverInfo is returned when a delivery-kind set completes
	// loading without driver name and vehicle number.
	ErrMissingDriverInfo = errors.New("driver name and vehicle number are required for delivery dispatch")

	// ErrMissingSignature is returned when a handover is completed without a
	// captured signature.
	ErrMissingSignature = errors.New("customer signature is required to complete handover")
)

// FulfillmentSet is one shippable unit within a customer delivery request.
// It is the aggregate root for the outbound workflow: the quotation stage
// assigns quotes and a delivery-order identifier, then the delivery state
// machine drives it from packing list through loading to customer handover.
//
// Invariants:
//   - Status never regresses; every operation validates the current status
//     before applying its transition.
//   - The Kind (delivery vs pickup) is fixed at creation and selects the
//     branch taken after loading.
//   - Workflow milestones are recorded once with actor and timestamp; a nil
//     milestone means the step has not happened.
type FulfillmentSet struct {
	id        kernel.UUID
	requestID kernel.UUID
	ordinal   int
	label     string
	kind      Kind
	items     []LineItem
	status    Status

	quotedAmount *decimal.Decimal
	deliveryFee  *decimal.Decimal

	deliveryOrderNo *string

	packingList *PackingList
	stockCheck  *StockCheck
	schedule    *Schedule
	loading     *Loading
	handover    *Handover

	// onRental flips when the handover completes: the goods leave company
	// stock and are on rental with the customer.
	onRental bool

	isConstructed bool
}

// NewFulfillmentSet creates a set in Pending status. The manifest may be
// empty at creation; IssuePackingList enforces non-emptiness later.
func NewFulfillmentSet(
	id, requestID kernel.UUID,
	ordinal int,
	label string,
	kind Kind,
	items []LineItem,
) (*FulfillmentSet, error) {
	set := &FulfillmentSet{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		set.setID(id),
		set.setRequestID(requestID),
		set.setOrdinal(ordinal),
		set.setKind(kind),
	); err != nil {
		return nil, err
	}

	set.label = label
	set.items = append([]LineItem(nil), items...)
	return set, nil
}

// RestoreFulfillmentSet reconstructs a set from persistence with its full
// workflow state. Used only by repository adapters.
func RestoreFulfillmentSet(
	id, requestID kernel.UUID,
	ordinal int,
	label string,
	kind Kind,
	items []LineItem,
	status Status,
	quotedAmount, deliveryFee *decimal.Decimal,
	deliveryOrderNo *string,
	packingList *PackingList,
	stockCheck *StockCheck,
	schedule *Schedule,
	loading *Loading,
	handover *Handover,
	onRental bool,
) (*FulfillmentSet, error) {
	set, err := NewFulfillmentSet(id, requestID, ordinal, label, kind, items)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	set.status = status
	set.quotedAmount = quotedAmount
	set.deliveryFee = deliveryFee
	set.deliveryOrderNo = deliveryOrderNo
	set.packingList = packingList
	set.stockCheck = stockCheck
	set.schedule = schedule
	set.loading = loading
	set.handover = handover
	set.onRental = onRental
	return set, nil
}

// Validate ensures the set was created through a constructor.
func (s *FulfillmentSet) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrFulfillmentSetIsNotConstructed
	}
	return nil
}

// IsEqual compares two sets by identifier.
func (s *FulfillmentSet) IsEqual(other *FulfillmentSet) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the set's unique identifier.
func (s *FulfillmentSet) ID() kernel.UUID { return s.id }

// RequestID returns the parent customer-request identifier.
func (s *FulfillmentSet) RequestID() kernel.UUID { return s.requestID }

// Ordinal returns the zero-based position of this set within its request.
func (s *FulfillmentSet) Ordinal() int { return s.ordinal }

// Label returns the human-facing set label.
func (s *FulfillmentSet) Label() string { return s.label }

// Kind returns the delivery-vs-pickup branch selector.
func (s *FulfillmentSet) Kind() Kind { return s.kind }

// Items returns a copy of the manifest.
func (s *FulfillmentSet) Items() []LineItem {
	return append([]LineItem(nil), s.items...)
}

// Status returns the current lifecycle status.
func (s *FulfillmentSet) Status() Status { return s.status }

// QuotedAmount returns the quoted rental amount, nil before quoting.
func (s *FulfillmentSet) QuotedAmount() *decimal.Decimal { return s.quotedAmount }

// DeliveryFee returns the quoted delivery fee, nil before quoting.
func (s *FulfillmentSet) DeliveryFee() *decimal.Decimal { return s.deliveryFee }

// DeliveryOrderNo returns the assigned delivery-order identifier, nil until
// a delivery order has been generated.
func (s *FulfillmentSet) DeliveryOrderNo() *string { return s.deliveryOrderNo }

// PackingList returns the packing-list record, nil before issue.
func (s *FulfillmentSet) PackingList() *PackingList { return s.packingList }

// StockCheck returns the stock-check record, nil before the check.
func (s *FulfillmentSet) StockCheck() *StockCheck { return s.stockCheck }

// Schedule returns the confirmed delivery schedule, nil before confirmation.
func (s *FulfillmentSet) Schedule() *Schedule { return s.schedule }

// Loading returns the pack-and-load record, nil before packing starts.
func (s *FulfillmentSet) Loading() *Loading { return s.loading }

// Handover returns the completed handover record, nil until verified.
func (s *FulfillmentSet) Handover() *Handover { return s.handover }

// OnRental reports whether the goods have left company stock.
func (s *FulfillmentSet) OnRental() bool { return s.onRental }

// Quote records the quoted amounts and moves the set to Quoted. Amounts must
// not be negative. Sequential gating across sibling sets is enforced by the
// caller via the gate service, not here.
func (s *FulfillmentSet) Quote(amount, fee decimal.Decimal) error {
	if amount.IsNegative() || fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("quote is invalid",
			fmt.Errorf("amount %s and fee %s must not be negative", amount, fee))
	}

	newStatus, err := s.status.Quote()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.quotedAmount = &amount
	s.deliveryFee = &fee
	return nil
}

// ConfirmByCustomer fixes the delivery schedule and moves the set to
// CustomerConfirmed. From here the set counts as handed off for gating.
func (s *FulfillmentSet) ConfirmByCustomer(date time.Time, timeSlot string) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	if timeSlot == "" {
		return errs.NewValueIsRequiredError("time slot")
	}

	newStatus, err := s.status.ConfirmByCustomer()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.schedule = &Schedule{Date: date, TimeSlot: timeSlot}
	return nil
}

// AssignDeliveryOrder attaches the delivery-order identifier and moves the
// set to DeliveryOrderGenerated. Sets sharing the identifier are merged into
// one delivery-order view by the aggregator.
func (s *FulfillmentSet) AssignDeliveryOrder(doNumber string) error {
	if doNumber == "" {
		return errs.NewValueIsRequiredError("delivery order number")
	}

	newStatus, err := s.status.GenerateDeliveryOrder()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.deliveryOrderNo = &doNumber
	return nil
}

// IssuePackingList records the packing-list document and moves the set to
// PackingListIssued. Fails with ErrEmptyManifest when the manifest is empty.
// Re-issuing while already in PackingListIssued regenerates the number
// without changing state.
func (s *FulfillmentSet) IssuePackingList(number, actor string) error {
	if len(s.items) == 0 {
		return ErrEmptyManifest
	}
	if number == "" {
		return errs.NewValueIsRequiredError("packing list number")
	}

	newStatus, err := s.status.IssuePackingList()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.packingList = &PackingList{Number: number, IssuedBy: actor, IssuedAt: time.Now().UTC()}
	return nil
}

// CheckStock records availability for every manifest item from the supplied
// levels (item name -> available quantity; missing names count as zero) and
// moves the set to StockChecked. The returned flag is true only when every
// item is covered. Insufficient stock is a warning for human judgment, never
// a blocker: the transition happens regardless.
func (s *FulfillmentSet) CheckStock(levels map[string]int, actor, notes string) (bool, error) {
	newStatus, err := s.status.CheckStock()
	if err != nil {
		return false, err
	}

	allAvailable := true
	checked := make([]LineItem, len(s.items))
	for i, item := range s.items {
		checked[i] = item.withAvailableStock(levels[item.Name()])
		if !checked[i].IsAvailable() {
			allAvailable = false
		}
	}

	s.status = newStatus
	s.items = checked
	s.stockCheck = &StockCheck{
		CheckedBy:    actor,
		CheckedAt:    time.Now().UTC(),
		Notes:        notes,
		AllAvailable: allAvailable,
	}
	return allAvailable, nil
}

// StartPacking moves the set to PackingAndLoading. The delivery date and
// time slot must already have been fixed by the customer confirmation; they
// are consumed here, not chosen here.
func (s *FulfillmentSet) StartPacking(actor string) error {
	if s.schedule == nil || s.schedule.Date.IsZero() || s.schedule.TimeSlot == "" {
		return ErrMissingSchedule
	}

	newStatus, err := s.status.StartPacking()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.loading = &Loading{StartedBy: actor, StartedAt: time.Now().UTC()}
	return nil
}

// CompleteLoading finishes the pack-and-load step. Delivery-kind sets
// require driver name and vehicle number, move to InTransit, and record the
// dispatch timestamp; pickup-kind sets move to ReadyForPickup without
// driver details.
func (s *FulfillmentSet) CompleteLoading(driver, vehicle string, photos []string) error {
	if s.kind == Delivery && (driver == "" || vehicle == "") {
		return ErrMissingDriverInfo
	}

	newStatus, err := s.status.CompleteLoading(s.kind)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	s.status = newStatus
	if s.loading == nil {
		s.loading = &Loading{}
	}
	s.loading.Driver = driver
	s.loading.Vehicle = vehicle
	s.loading.Photos = append([]string(nil), photos...)
	s.loading.LoadedAt = &now
	if s.kind == Delivery {
		s.loading.DispatchedAt = &now
	}
	return nil
}

// CompleteHandover finalizes the set after one-time-code verification: it
// records the acknowledgement, marks the goods on rental, and moves the set
// to Completed. Fails with ErrMissingSignature when no signature reference
// was captured.
func (s *FulfillmentSet) CompleteHandover(recipient, signedBy, signatureRef string) error {
	if signatureRef == "" {
		return ErrMissingSignature
	}

	newStatus, err := s.status.CompleteHandover()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.handover = &Handover{
		Recipient:    recipient,
		SignedBy:     signedBy,
		SignatureRef: signatureRef,
		VerifiedAt:   time.Now().UTC(),
	}
	s.onRental = true
	return nil
}

func (s *FulfillmentSet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *FulfillmentSet) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("request ID: %w", err)
	}
	s.requestID = id
	return nil
}

func (s *FulfillmentSet) setOrdinal(ordinal int) error {
	if ordinal < 0 {
		return errs.NewValueIsInvalidErrorWithCause("ordinal is invalid",
			fmt.Errorf("%d is not greater than or equal to 0", ordinal))
	}
	s.ordinal = ordinal
	return nil
}

func (s *FulfillmentSet) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}
