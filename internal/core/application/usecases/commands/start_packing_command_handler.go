package commands

import (
	"context"
)

// StartPackingCommandHandler moves a set into the pack-and-load step. The
// confirmed delivery schedule is a precondition enforced by the aggregate.
type StartPackingCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewStartPackingCommandHandler creates a handler for starting packing.
func NewStartPackingCommandHandler(uowFactory ShipmentUoWFactory) StartPackingCommandHandler {
	return StartPackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-packing command.
func (h *StartPackingCommandHandler) Handle(ctx context.Context, cmd StartPackingCommand) error {
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

	if err = set.StartPacking(cmd.Actor()); err != nil {
		return err
	}

	if err = repo.Update(ctx, set); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
