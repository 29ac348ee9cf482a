package commands

import (
	"context"
)

// ConfirmFulfillmentSetCommandHandler records customer confirmation of a
// quote. After confirmation the set counts as handed off, unblocking its
// successor in the quotation sequence.
type ConfirmFulfillmentSetCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewConfirmFulfillmentSetCommandHandler creates a handler for quote
// confirmation.
func NewConfirmFulfillmentSetCommandHandler(uowFactory ShipmentUoWFactory) ConfirmFulfillmentSetCommandHandler {
	return ConfirmFulfillmentSetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmFulfillmentSetCommandHandler) Handle(ctx context.Context, cmd ConfirmFulfillmentSetCommand) error {
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

	repo := uow.ShipmentRepository()
	set, err := repo.Get(ctx, cmd.SetID())
	if err != nil {
		return err
	}

	if err = set.ConfirmByCustomer(cmd.Date(), cmd.TimeSlot()); err != nil {
		return err
	}

	if err = repo.Update(ctx, set); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
