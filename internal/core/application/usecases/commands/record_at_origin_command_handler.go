package commands

import (
	"context"
)

// RecordAtOriginCommandHandler stores origin evidence and moves the return
// into transit.
type RecordAtOriginCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewRecordAtOriginCommandHandler creates a handler for origin recording.
func NewRecordAtOriginCommandHandler(uowFactory ReturnUoWFactory) RecordAtOriginCommandHandler {
	return RecordAtOriginCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the origin-recording command.
func (h *RecordAtOriginCommandHandler) Handle(ctx context.Context, cmd RecordAtOriginCommand) error {
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

	if err = order.RecordAtOrigin(cmd.Photos()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
