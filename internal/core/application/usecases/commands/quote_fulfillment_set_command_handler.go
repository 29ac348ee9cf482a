package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/services"
)

// ErrSetBlockedBySequence is returned when a gate-checked command targets a
// set whose immediate predecessor has not been handed off yet.
var ErrSetBlockedBySequence = errors.New(
	"fulfillment set is blocked: preceding set has not been handed off")

// QuoteFulfillmentSetCommandHandler handles quote issuance. Sibling sets of
// the same request are quoted strictly in ordinal order: the gate blocks a
// quote until the predecessor reached customer confirmation.
type QuoteFulfillmentSetCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       services.SequentialGate
}

// NewQuoteFulfillmentSetCommandHandler creates a handler for quote issuance.
func NewQuoteFulfillmentSetCommandHandler(
	uowFactory ShipmentUoWFactory,
	gate services.SequentialGate,
) QuoteFulfillmentSetCommandHandler {
	return QuoteFulfillmentSetCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the quote command. Loads the target set and its siblings,
// consults the sequential gate, applies the quote, and persists the change.
// Returns ErrSetBlockedBySequence when the predecessor is not handed off.
func (h *QuoteFulfillmentSetCommandHandler) Handle(ctx context.Context, cmd QuoteFulfillmentSetCommand) error {
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

	siblings, err := repo.GetByRequest(ctx, set.RequestID())
	if err != nil {
		return err
	}

	allowed, err := h.gate.CanAdvance(set, siblings)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrSetBlockedBySequence
	}

	if err = set.Quote(cmd.Amount(), cmd.Fee()); err != nil {
		return err
	}

	if err = repo.Update(ctx, set); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
