package returns

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrReturnOrderIsNotConstructed is returned when a ReturnOrder was not
	// created through NewReturnOrder or RestoreReturnOrder.
	ErrReturnOrderIsNotConstructed = errors.New(
		"ReturnOrder must be created via NewReturnOrder or RestoreReturnOrder")

	// ErrMissingPickupSchedule is returned when a courier collection is
	// approved without a pickup date and time slot.
	ErrMissingPickupSchedule = errors.New("pickup date and time slot are required for courier collection")

	// ErrMissingEvidence is returned when an evidence-recording step is
	// attempted without at least one photo reference.
	ErrMissingEvidence = errors.New("at least one photo reference is required")

	// ErrIncompleteInspection is returned when the inspection completes while
	// any item still lacks an assigned condition.
	ErrIncompleteInspection = errors.New("every returned item requires an assigned condition")

	// ErrOrderAlreadyCompleted is returned for any operation on a completed
	// return order. Not retryable by design.
	ErrOrderAlreadyCompleted = errors.New("return order is already completed")
)

// Customer identifies the returning customer and the contact used for
// notifications.
type Customer struct {
	Name    string
	Contact string
}

// PickupSchedule is the agreed courier collection window.
type PickupSchedule struct {
	Date     time.Time
	TimeSlot string
}

// DriverAssignment records the confirmed pickup driver.
type DriverAssignment struct {
	Name        string
	Contact     string
	ConfirmedAt time.Time
}

// Inspection records the inspection outcome shared across items.
type Inspection struct {
	CompletedAt      time.Time
	Notes            string
	HasExternalGoods bool
}

// Dispute records a customer disagreement raised against the inspection
// outcome.
type Dispute struct {
	Reason   string
	RaisedAt time.Time
}

// ReturnOrder is the aggregate root for the inbound workflow: one return
// request driven from submission through collection, warehouse receipt,
// inspection and completion. The collection method chosen at approval time
// fixes which branch of the state machine applies.
//
// Invariants:
//   - Status never regresses and Completed is terminal.
//   - Self-return orders never pass through DriverRecording or InTransit;
//     courier orders always do.
//   - Inspection cannot complete until every item has a condition.
type ReturnOrder struct {
	id             kernel.UUID
	customer       Customer
	originOrderRef string
	returnType     ReturnType
	method         CollectionMethod
	items          []ReturnItem
	status         Status

	grnNumber            *string
	conditionFormNumber  *string
	conditionFormSkipped bool

	pickup     *PickupSchedule
	driver     *DriverAssignment
	inspection *Inspection
	dispute    *Dispute

	originPhotos    []string
	warehousePhotos []string

	receivedAt  *time.Time
	notifiedAt  *time.Time
	completedAt *time.Time

	inventoryUpdated bool
	statementUpdated bool
	customerNotified bool

	isConstructed bool
}

// NewReturnOrder creates a return order in Requested status. At least one
// item is required; the collection method and return type must be declared
// up front.
func NewReturnOrder(
	id kernel.UUID,
	customer Customer,
	originOrderRef string,
	returnType ReturnType,
	method CollectionMethod,
	items []ReturnItem,
) (*ReturnOrder, error) {
	order := &ReturnOrder{
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setReturnType(returnType),
		order.setMethod(method),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.originOrderRef = originOrderRef
	return order, nil
}

// RestoreReturnOrder reconstructs a return order from persistence with its
// full workflow state. Used only by repository adapters.
func RestoreReturnOrder(
	id kernel.UUID,
	customer Customer,
	originOrderRef string,
	returnType ReturnType,
	method CollectionMethod,
	items []ReturnItem,
	status Status,
	grnNumber, conditionFormNumber *string,
	conditionFormSkipped bool,
	pickup *PickupSchedule,
	driver *DriverAssignment,
	inspection *Inspection,
	dispute *Dispute,
	originPhotos, warehousePhotos []string,
	receivedAt, notifiedAt, completedAt *time.Time,
	inventoryUpdated, statementUpdated, customerNotified bool,
) (*ReturnOrder, error) {
	order, err := NewReturnOrder(id, customer, originOrderRef, returnType, method, items)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.grnNumber = grnNumber
	order.conditionFormNumber = conditionFormNumber
	order.conditionFormSkipped = conditionFormSkipped
	order.pickup = pickup
	order.driver = driver
	order.inspection = inspection
	order.dispute = dispute
	order.originPhotos = append([]string(nil), originPhotos...)
	order.warehousePhotos = append([]string(nil), warehousePhotos...)
	order.receivedAt = receivedAt
	order.notifiedAt = notifiedAt
	order.completedAt = completedAt
	order.inventoryUpdated = inventoryUpdated
	order.statementUpdated = statementUpdated
	order.customerNotified = customerNotified
	return order, nil
}

// Validate ensures the order was created through a constructor.
func (o *ReturnOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrReturnOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two return orders by identifier.
func (o *ReturnOrder) IsEqual(other *ReturnOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *ReturnOrder) ID() kernel.UUID { return o.id }

// Customer returns the returning customer.
func (o *ReturnOrder) Customer() Customer { return o.customer }

// OriginOrderRef returns the reference to the originating rental order.
func (o *ReturnOrder) OriginOrderRef() string { return o.originOrderRef }

// ReturnType returns the declared full/partial return type.
func (o *ReturnOrder) ReturnType() ReturnType { return o.returnType }

// CollectionMethod returns the declared collection method.
func (o *ReturnOrder) CollectionMethod() CollectionMethod { return o.method }

// Items returns a copy of the return lines.
func (o *ReturnOrder) Items() []ReturnItem {
	return append([]ReturnItem(nil), o.items...)
}

// Status returns the current lifecycle status.
func (o *ReturnOrder) Status() Status { return o.status }

// GoodsReceiptNumber returns the GRN document number, nil before inspection.
func (o *ReturnOrder) GoodsReceiptNumber() *string { return o.grnNumber }

// ConditionFormNumber returns the return-condition form number, nil when not
// generated.
func (o *ReturnOrder) ConditionFormNumber() *string { return o.conditionFormNumber }

// ConditionFormSkipped reports whether the form was explicitly skipped.
func (o *ReturnOrder) ConditionFormSkipped() bool { return o.conditionFormSkipped }

// Pickup returns the courier collection window, nil on the self branch.
func (o *ReturnOrder) Pickup() *PickupSchedule { return o.pickup }

// Driver returns the confirmed pickup driver, nil before confirmation.
func (o *ReturnOrder) Driver() *DriverAssignment { return o.driver }

// Inspection returns the inspection record, nil before inspection.
func (o *ReturnOrder) Inspection() *Inspection { return o.inspection }

// Dispute returns the customer dispute, nil when none was raised.
func (o *ReturnOrder) Dispute() *Dispute { return o.dispute }

// OriginPhotos returns the evidence captured at the customer site.
func (o *ReturnOrder) OriginPhotos() []string {
	return append([]string(nil), o.originPhotos...)
}

// WarehousePhotos returns the evidence captured at warehouse receipt.
func (o *ReturnOrder) WarehousePhotos() []string {
	return append([]string(nil), o.warehousePhotos...)
}

// ReceivedAt returns the warehouse receipt timestamp, nil before receipt.
func (o *ReturnOrder) ReceivedAt() *time.Time { return o.receivedAt }

// NotifiedAt returns the customer notification timestamp.
func (o *ReturnOrder) NotifiedAt() *time.Time { return o.notifiedAt }

// CompletedAt returns the completion timestamp.
func (o *ReturnOrder) CompletedAt() *time.Time { return o.completedAt }

// InventoryUpdated reports whether inventory was adjusted at completion.
func (o *ReturnOrder) InventoryUpdated() bool { return o.inventoryUpdated }

// StatementUpdated reports whether the statement of account was adjusted.
func (o *ReturnOrder) StatementUpdated() bool { return o.statementUpdated }

// CustomerNotified reports whether the outcome notification was sent.
func (o *ReturnOrder) CustomerNotified() bool { return o.customerNotified }

func (o *ReturnOrder) guardNotCompleted() error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyCompleted
	}
	return nil
}

// ApproveAndSchedule accepts the return request. Courier collections require
// a pickup date and time slot and move to PickupScheduled; self-returns move
// straight to Approved.
func (o *ReturnOrder) ApproveAndSchedule(pickupDate time.Time, timeSlot string) error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}
	if o.method == Courier && (pickupDate.IsZero() || timeSlot == "") {
		return ErrMissingPickupSchedule
	}

	newStatus, err := o.status.Approve(o.method)
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.method == Courier {
		o.pickup = &PickupSchedule{Date: pickupDate, TimeSlot: timeSlot}
	}
	return nil
}

// ConfirmPickup records the collection driver and moves the order to
// DriverRecording. Courier branch only; both driver name and contact are
// required.
func (o *ReturnOrder) ConfirmPickup(driverName, driverContact string) error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}
	if driverName == "" || driverContact == "" {
		return errs.NewValueIsRequiredError("driver name and contact")
	}

	newStatus, err := o.status.ConfirmPickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driver = &DriverAssignment{Name: driverName, Contact: driverContact, ConfirmedAt: time.Now().UTC()}
	return nil
}

// RecordAtOrigin captures the driver's evidence at the customer site and
// moves the order to InTransit. Courier branch only; fails with
// ErrMissingEvidence when no photo reference is supplied.
func (o *ReturnOrder) RecordAtOrigin(photos []string) error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}
	if len(photos) == 0 {
		return ErrMissingEvidence
	}

	newStatus, err := o.status.RecordAtOrigin()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.originPhotos = append([]string(nil), photos...)
	return nil
}

// ReceiveAtWarehouse captures receipt evidence and converges both branches
// on ReceivedAtWarehouse. Fails with ErrMissingEvidence when no photo
// reference is supplied.
func (o *ReturnOrder) ReceiveAtWarehouse(photos []string) error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}
	if len(photos) == 0 {
		return ErrMissingEvidence
	}

	newStatus, err := o.status.ReceiveAtWarehouse()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.warehousePhotos = append([]string(nil), photos...)
	o.receivedAt = &now
	return nil
}

// CompleteInspection assigns conditions to every item (keyed by item ID),
// records the goods-receipt-note number, and moves the order to
// UnderInspection. Fails with ErrIncompleteInspection when any item lacks an
// assessment.
func (o *ReturnOrder) CompleteInspection(
	grnNumber string,
	assessments map[kernel.UUID]Assessment,
	notes string,
	hasExternalGoods bool,
) error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}
	if grnNumber == "" {
		return errs.NewValueIsRequiredError("goods receipt note number")
	}

	newStatus, err := o.status.CompleteInspection()
	if err != nil {
		return err
	}

	assessed := make([]ReturnItem, len(o.items))
	for i, item := range o.items {
		assessment, ok := assessments[item.ID()]
		if !ok {
			return ErrIncompleteInspection
		}
		assessed[i], err = item.withAssessment(assessment)
		if err != nil {
			return err
		}
	}

	o.status = newStatus
	o.items = assessed
	o.grnNumber = &grnNumber
	o.inspection = &Inspection{
		CompletedAt:      time.Now().UTC(),
		Notes:            notes,
		HasExternalGoods: hasExternalGoods,
	}
	return nil
}

// RaiseDispute records a customer disagreement with the inspection outcome.
// Allowed any time between warehouse receipt and completion.
func (o *ReturnOrder) RaiseDispute(reason string) error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("dispute reason")
	}
	if o.receivedAt == nil {
		return invalidTransition(o.status, "raise a dispute for")
	}

	o.dispute = &Dispute{Reason: reason, RaisedAt: time.Now().UTC()}
	return nil
}

// GenerateConditionForm records the return-condition form number and moves
// the order to SortingComplete.
func (o *ReturnOrder) GenerateConditionForm(formNumber string) error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}
	if formNumber == "" {
		return errs.NewValueIsRequiredError("condition form number")
	}

	newStatus, err := o.status.FinalizeSorting()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.conditionFormNumber = &formNumber
	o.conditionFormSkipped = false
	return nil
}

// SkipConditionForm explicitly records that no return-condition form was
// produced and moves the order to SortingComplete.
func (o *ReturnOrder) SkipConditionForm() error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}

	newStatus, err := o.status.FinalizeSorting()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.conditionFormNumber = nil
	o.conditionFormSkipped = true
	return nil
}

// NotifyCustomer flags the outcome notification as sent and moves the order
// to CustomerNotified. Message delivery belongs to the notification
// collaborator, not the aggregate.
func (o *ReturnOrder) NotifyCustomer() error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}

	newStatus, err := o.status.NotifyCustomer()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.customerNotified = true
	o.notifiedAt = &now
	return nil
}

// Complete flags inventory and statement of account as updated and moves the
// order to its terminal Completed status.
func (o *ReturnOrder) Complete() error {
	if err := o.guardNotCompleted(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.inventoryUpdated = true
	o.statementUpdated = true
	o.completedAt = &now
	return nil
}

func (o *ReturnOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ReturnOrder) setCustomer(customer Customer) error {
	if customer.Name == "" || customer.Contact == "" {
		return errs.NewValueIsRequiredError("customer name and contact")
	}
	o.customer = customer
	return nil
}

func (o *ReturnOrder) setReturnType(returnType ReturnType) error {
	if err := returnType.Validate(); err != nil {
		return err
	}
	o.returnType = returnType
	return nil
}

func (o *ReturnOrder) setMethod(method CollectionMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.method = method
	return nil
}

func (o *ReturnOrder) setItems(items []ReturnItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("return items")
	}
	o.items = append([]ReturnItem(nil), items...)
	return nil
}
