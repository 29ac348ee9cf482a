package commands

import (
	"context"
)

// RaiseDisputeCommandHandler records inspection disputes on return orders.
type RaiseDisputeCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewRaiseDisputeCommandHandler creates a handler for dispute recording.
func NewRaiseDisputeCommandHandler(uowFactory ReturnUoWFactory) RaiseDisputeCommandHandler {
	return RaiseDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispute command.
func (h *RaiseDisputeCommandHandler) Handle(ctx context.Context, cmd RaiseDisputeCommand) error {
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

	if err = order.RaiseDispute(cmd.Reason()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
