package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// IssuePackingListCommandHandler issues packing-list documents. A fresh
// PL number comes from the document sequence on every issue, including
// re-issues for a set already in PackingListIssued status.
type IssuePackingListCommandHandler struct {
	uowFactory ShipmentUoWFactory
	docNumbers ports.DocumentNumbers
}

// NewIssuePackingListCommandHandler creates a handler for packing-list
// issuance.
func NewIssuePackingListCommandHandler(
	uowFactory ShipmentUoWFactory,
	docNumbers ports.DocumentNumbers,
) IssuePackingListCommandHandler {
	return IssuePackingListCommandHandler{
		uowFactory: uowFactory,
		docNumbers: docNumbers,
	}
}

// Handle processes the issuance command.
func (h *IssuePackingListCommandHandler) Handle(ctx context.Context, cmd IssuePackingListCommand) error {
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

	number, err := h.docNumbers.NextPackingList(ctx)
	if err != nil {
		return err
	}

	if err = set.IssuePackingList(number, cmd.Actor()); err != nil {
		return err
	}

	if err = repo.Update(ctx, set); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
