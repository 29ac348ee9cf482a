package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// NotifyReturnCustomerCommandHandler dispatches the outcome notification via
// the gateway and moves the order to CustomerNotified. The state change is
// applied first so an invalid transition is caught before any message leaves
// the system.
type NotifyReturnCustomerCommandHandler struct {
	uowFactory ReturnUoWFactory
	notifier   ports.NotificationClient
}

// NewNotifyReturnCustomerCommandHandler creates a handler for customer
// notification.
func NewNotifyReturnCustomerCommandHandler(
	uowFactory ReturnUoWFactory,
	notifier ports.NotificationClient,
) NotifyReturnCustomerCommandHandler {
	return NotifyReturnCustomerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the notification command. A gateway failure rolls back
// the state change so the notification can be retried.
func (h *NotifyReturnCustomerCommandHandler) Handle(ctx context.Context, cmd NotifyReturnCustomerCommand) error {
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

	if err = order.NotifyCustomer(); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	if err = h.notifier.SendCustomerUpdate(ctx, order.Customer().Contact, cmd.Subject(), cmd.Body()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
