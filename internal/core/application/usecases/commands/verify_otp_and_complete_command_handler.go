package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// VerifyOTPAndCompleteCommandHandler closes the outbound workflow: it checks
// the supplied code against the latest stored challenge, completes the
// handover on the set, and removes the consumed challenge.
type VerifyOTPAndCompleteCommandHandler struct {
	uowFactory ShipmentUoWFactory
	challenges ports.ChallengeStore
}

// NewVerifyOTPAndCompleteCommandHandler creates a handler for handover
// verification.
func NewVerifyOTPAndCompleteCommandHandler(
	uowFactory ShipmentUoWFactory,
	challenges ports.ChallengeStore,
) VerifyOTPAndCompleteCommandHandler {
	return VerifyOTPAndCompleteCommandHandler{
		uowFactory: uowFactory,
		challenges: challenges,
	}
}

// Handle processes the verification command. A wrong code fails with
// otp.ErrInvalidOTP and leaves both the set and the challenge untouched, so
// the customer may retry or request a fresh code.
func (h *VerifyOTPAndCompleteCommandHandler) Handle(ctx context.Context, cmd VerifyOTPAndCompleteCommand) error {
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

	challenge, err := h.challenges.Get(ctx, set.ID())
	if err != nil {
		return err
	}

	verified, err := challenge.Verify(cmd.Code())
	if err != nil {
		return err
	}

	if err = set.CompleteHandover(verified.Recipient(), cmd.SignedBy(), cmd.SignatureRef()); err != nil {
		return err
	}

	if err = repo.Update(ctx, set); err != nil {
		return err
	}

	if err = h.challenges.Remove(ctx, set.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
