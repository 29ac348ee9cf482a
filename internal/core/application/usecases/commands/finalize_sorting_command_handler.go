package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// FinalizeSortingCommandHandler finalizes sorting with or without a
// returned-condition form. The form number comes from the document sequence
// only when one is requested.
type FinalizeSortingCommandHandler struct {
	uowFactory ReturnUoWFactory
	docNumbers ports.DocumentNumbers
}

// NewFinalizeSortingCommandHandler creates a handler for sorting
// finalization.
func NewFinalizeSortingCommandHandler(
	uowFactory ReturnUoWFactory,
	docNumbers ports.DocumentNumbers,
) FinalizeSortingCommandHandler {
	return FinalizeSortingCommandHandler{
		uowFactory: uowFactory,
		docNumbers: docNumbers,
	}
}

// Handle processes the finalization command.
func (h *FinalizeSortingCommandHandler) Handle(ctx context.Context, cmd FinalizeSortingCommand) error {
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

	if cmd.GenerateForm() {
		formNumber, numErr := h.docNumbers.NextConditionForm(ctx)
		if numErr != nil {
			return numErr
		}
		err = order.GenerateConditionForm(formNumber)
	} else {
		err = order.SkipConditionForm()
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
