package commands

import (
	"context"
)

// ConfirmPickupCommandHandler records the collection driver and moves the
// return into the driver-recording step.
type ConfirmPickupCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(uowFactory ReturnUoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup-confirmation command.
func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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

	repo := uow.ReturnRepository()
	order, err := repo.Get(ctx, cmd.ReturnID())
	if err != nil {
		return err
	}

	if err = order.ConfirmPickup(cmd.DriverName(), cmd.DriverContact()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
