package commands

import (
	"context"
)

// CompleteReturnCommandHandler completes return orders. Completion is
// terminal: any later operation on the order fails and a new request must
// be raised instead.
type CompleteReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewCompleteReturnCommandHandler creates a handler for return completion.
func NewCompleteReturnCommandHandler(uowFactory ReturnUoWFactory) CompleteReturnCommandHandler {
	return CompleteReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteReturnCommandHandler) Handle(ctx context.Context, cmd CompleteReturnCommand) error {
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

	if err = order.Complete(); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
