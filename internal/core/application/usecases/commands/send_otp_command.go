package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSendOTPCommandIsNotConstructed = errors.New(
	"SendOTPCommand must be created via NewSendOTPCommand constructor",
)

// SendOTPCommand issues a one-time code for a set awaiting handover and
// dispatches it to the selected customer contact. Sending again replaces the
// previous code: only the latest one verifies.
type SendOTPCommand struct { //nolint:recvcheck //using for validation
	setID     kernel.UUID
	recipient string

	guard guard.ConstructorGuard
}

// NewSendOTPCommand creates a command to issue and dispatch a one-time code.
// The recipient contact must be selected; otp.ErrNoRecipientSelected is the
// domain-level backstop.
func NewSendOTPCommand(setID kernel.UUID, recipient string) (SendOTPCommand, error) {
	cmd := SendOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSetID(setID); err != nil {
		return SendOTPCommand{}, err
	}

	cmd.recipient = recipient
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOTPCommand) Validate() error {
	return c.guard.Validate(ErrSendOTPCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c SendOTPCommand) SetID() kernel.UUID { return c.setID }

// Recipient returns the contact the code is dispatched to.
func (c SendOTPCommand) Recipient() string { return c.recipient }

func (c *SendOTPCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}
