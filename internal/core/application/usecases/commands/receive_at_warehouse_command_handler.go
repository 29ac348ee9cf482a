package commands

import (
	"context"
)

// ReceiveAtWarehouseCommandHandler records warehouse receipt of a return.
type ReceiveAtWarehouseCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewReceiveAtWarehouseCommandHandler creates a handler for warehouse
// receipt.
func NewReceiveAtWarehouseCommandHandler(uowFactory ReturnUoWFactory) ReceiveAtWarehouseCommandHandler {
	return ReceiveAtWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse-receipt command.
func (h *ReceiveAtWarehouseCommandHandler) Handle(ctx context.Context, cmd ReceiveAtWarehouseCommand) error {
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

	if err = order.ReceiveAtWarehouse(cmd.Photos()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
