package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/returns"
)

// CreateReturnOrderCommandHandler handles submission of return requests.
type CreateReturnOrderCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewCreateReturnOrderCommandHandler creates a handler for return
// submission. Requires a ReturnUoWFactory for transactional persistence.
func NewCreateReturnOrderCommandHandler(uowFactory ReturnUoWFactory) CreateReturnOrderCommandHandler {
	return CreateReturnOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command.
func (h *CreateReturnOrderCommandHandler) Handle(ctx context.Context, cmd CreateReturnOrderCommand) error {
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

	order, err := returns.NewReturnOrder(
		cmd.ReturnID(), cmd.Customer(), cmd.OriginOrderRef(),
		cmd.ReturnType(), cmd.Method(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.ReturnRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
