package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// CreateFulfillmentSetCommandHandler handles registration of new fulfillment
// sets. The ordinal supplied by the caller fixes the set's place in the
// sequential quotation flow.
type CreateFulfillmentSetCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateFulfillmentSetCommandHandler creates a handler for set
// registration. Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateFulfillmentSetCommandHandler(uowFactory ShipmentUoWFactory) CreateFulfillmentSetCommandHandler {
	return CreateFulfillmentSetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The new set is persisted in
// Pending status within a transaction.
func (h *CreateFulfillmentSetCommandHandler) Handle(ctx context.Context, cmd CreateFulfillmentSetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	set, err := shipment.NewFulfillmentSet(
		cmd.SetID(), cmd.RequestID(), cmd.Ordinal(), cmd.Label(), cmd.Kind(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, set); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
