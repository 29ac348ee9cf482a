package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

// ErrSetNotAwaitingHandover is returned when a one-time code is requested
// for a set that is neither in transit nor ready for pickup.
var ErrSetNotAwaitingHandover = errors.New(
	"one-time code can only be sent for a set awaiting handover")

// SendOTPCommandHandler issues handover challenges. The challenge is stored
// under the set identifier, replacing any previous one, then dispatched via
// the notification gateway. No expiry: the code stays valid until replaced
// or consumed.
type SendOTPCommandHandler struct {
	uowFactory ShipmentUoWFactory
	challenges ports.ChallengeStore
	notifier   ports.NotificationClient
}

// NewSendOTPCommandHandler creates a handler for one-time code issuance.
func NewSendOTPCommandHandler(
	uowFactory ShipmentUoWFactory,
	challenges ports.ChallengeStore,
	notifier ports.NotificationClient,
) SendOTPCommandHandler {
	return SendOTPCommandHandler{
		uowFactory: uowFactory,
		challenges: challenges,
		notifier:   notifier,
	}
}

// Handle processes the send command. The set is only read, never modified:
// the challenge lives in the challenge store until verification.
func (h *SendOTPCommandHandler) Handle(ctx context.Context, cmd SendOTPCommand) error {
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

	set, err := uow.ShipmentRepository().Get(ctx, cmd.SetID())
	if err != nil {
		return err
	}

	if set.Status() != shipment.InTransit && set.Status() != shipment.ReadyForPickup {
		return ErrSetNotAwaitingHandover
	}

	challenge, err := otp.NewChallenge(set.ID(), cmd.Recipient())
	if err != nil {
		return err
	}

	if err = h.challenges.Put(ctx, challenge); err != nil {
		return err
	}

	if err = h.notifier.SendOTPMessage(ctx, challenge.Recipient(), challenge.Code(), set.Label()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
