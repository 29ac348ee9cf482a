package commands

import (
	"context"
)

// CompleteLoadingCommandHandler finishes loading and branches the set:
// delivery-kind sets dispatch into transit, pickup-kind sets become ready
// for customer collection.
type CompleteLoadingCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCompleteLoadingCommandHandler creates a handler for loading completion.
func NewCompleteLoadingCommandHandler(uowFactory ShipmentUoWFactory) CompleteLoadingCommandHandler {
	return CompleteLoadingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the loading-completion command.
func (h *CompleteLoadingCommandHandler) Handle(ctx context.Context, cmd CompleteLoadingCommand) error {
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

	if err = set.CompleteLoading(cmd.Driver(), cmd.Vehicle(), cmd.Photos()); err != nil {
		return err
	}

	if err = repo.Update(ctx, set); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
