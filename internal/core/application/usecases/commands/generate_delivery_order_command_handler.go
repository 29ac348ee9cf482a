package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GenerateDeliveryOrderCommandHandler assigns delivery-order numbers. Like
// quoting, the operation is gate-checked: a set cannot receive a delivery
// order before its predecessor is handed off.
type GenerateDeliveryOrderCommandHandler struct {
	uowFactory ShipmentUoWFactory
	docNumbers ports.DocumentNumbers
	gate       services.SequentialGate
}

// NewGenerateDeliveryOrderCommandHandler creates a handler for delivery-order
// assignment.
func NewGenerateDeliveryOrderCommandHandler(
	uowFactory ShipmentUoWFactory,
	docNumbers ports.DocumentNumbers,
	gate services.SequentialGate,
) GenerateDeliveryOrderCommandHandler {
	return GenerateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		docNumbers: docNumbers,
		gate:       gate,
	}
}

// Handle processes the assignment command. Issues a fresh DO number unless
// the command names an existing one to join.
func (h *GenerateDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd GenerateDeliveryOrderCommand) error {
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

	doNumber := cmd.JoinNumber()
	if doNumber == "" {
		if doNumber, err = h.docNumbers.NextDeliveryOrder(ctx); err != nil {
			return err
		}
	}

	if err = set.AssignDeliveryOrder(doNumber); err != nil {
		return err
	}

	if err = repo.Update(ctx, set); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
