package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateFulfillmentSetCommandIsNotConstructed = errors.New(
		"CreateFulfillmentSetCommand must be created via NewCreateFulfillmentSetCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one line item is required")
)

// CreateFulfillmentSetCommand registers a new fulfillment set for a customer
// request. The set starts in Pending status and enters the quotation flow
// once its predecessor (if any) is handed off.
//
// Example:
//
//	setID := kernel.NewUUID()
//	items := []shipment.LineItem{frame, brace}
//	cmd, err := NewCreateFulfillmentSetCommand(setID, requestID, 0, "Set A", shipment.Delivery, items)
//	if err != nil {
//	    return fmt.Errorf("invalid set data: %w", err)
//	}
//
//	handler := NewCreateFulfillmentSetCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register set: %w", err)
//	}
type CreateFulfillmentSetCommand struct { //nolint:recvcheck //using for validation
	setID     kernel.UUID
	requestID kernel.UUID
	ordinal   int
	label     string
	kind      shipment.Kind
	items     []shipment.LineItem

	guard guard.ConstructorGuard
}

// NewCreateFulfillmentSetCommand creates a command to register a fulfillment
// set. Validates identifiers, ordinal, kind, and that at least one line item
// is supplied.
func NewCreateFulfillmentSetCommand(
	setID, requestID kernel.UUID,
	ordinal int,
	label string,
	kind shipment.Kind,
	items []shipment.LineItem,
) (CreateFulfillmentSetCommand, error) {
	cmd := CreateFulfillmentSetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSetID(setID),
		cmd.setRequestID(requestID),
		cmd.setKind(kind),
		cmd.setItems(items),
	); err != nil {
		return CreateFulfillmentSetCommand{}, err
	}

	cmd.ordinal = ordinal
	cmd.label = label
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFulfillmentSetCommand) Validate() error {
	return c.guard.Validate(ErrCreateFulfillmentSetCommandIsNotConstructed)
}

// SetID returns the identifier for the new set.
func (c CreateFulfillmentSetCommand) SetID() kernel.UUID { return c.setID }

// RequestID returns the parent customer-request identifier.
func (c CreateFulfillmentSetCommand) RequestID() kernel.UUID { return c.requestID }

// Ordinal returns the zero-based position within the request.
func (c CreateFulfillmentSetCommand) Ordinal() int { return c.ordinal }

// Label returns the human-facing set label.
func (c CreateFulfillmentSetCommand) Label() string { return c.label }

// Kind returns the delivery-vs-pickup branch selector.
func (c CreateFulfillmentSetCommand) Kind() shipment.Kind { return c.kind }

// Items returns the manifest for the new set.
func (c CreateFulfillmentSetCommand) Items() []shipment.LineItem {
	return append([]shipment.LineItem(nil), c.items...)
}

func (c *CreateFulfillmentSetCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}

func (c *CreateFulfillmentSetCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *CreateFulfillmentSetCommand) setKind(kind shipment.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateFulfillmentSetCommand) setItems(items []shipment.LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = append([]shipment.LineItem(nil), items...)
	return nil
}
