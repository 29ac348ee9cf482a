package commands

import (
	"context"
)

// ApproveReturnCommandHandler approves return requests. The aggregate
// branches on its declared collection method: courier collections move to
// PickupScheduled, self-returns to Approved.
type ApproveReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewApproveReturnCommandHandler creates a handler for return approval.
func NewApproveReturnCommandHandler(uowFactory ReturnUoWFactory) ApproveReturnCommandHandler {
	return ApproveReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h *ApproveReturnCommandHandler) Handle(ctx context.Context, cmd ApproveReturnCommand) error {
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

	if err = order.ApproveAndSchedule(cmd.PickupDate(), cmd.TimeSlot()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
