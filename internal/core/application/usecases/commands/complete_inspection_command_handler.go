package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// CompleteInspectionCommandHandler completes the inspection step. A fresh
// goods-received-note number is drawn from the document sequence and
// recorded on the order.
type CompleteInspectionCommandHandler struct {
	uowFactory ReturnUoWFactory
	docNumbers ports.DocumentNumbers
}

// NewCompleteInspectionCommandHandler creates a handler for inspection
// completion.
func NewCompleteInspectionCommandHandler(
	uowFactory ReturnUoWFactory,
	docNumbers ports.DocumentNumbers,
) CompleteInspectionCommandHandler {
	return CompleteInspectionCommandHandler{
		uowFactory: uowFactory,
		docNumbers: docNumbers,
	}
}

// Handle processes the inspection command.
func (h *CompleteInspectionCommandHandler) Handle(ctx context.Context, cmd CompleteInspectionCommand) error {
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

	grnNumber, err := h.docNumbers.NextGoodsReceipt(ctx)
	if err != nil {
		return err
	}

	if err = order.CompleteInspection(grnNumber, cmd.Assessments(), cmd.Notes(), cmd.HasExternalGoods()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
