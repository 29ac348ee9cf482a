package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRaiseDisputeCommandIsNotConstructed = errors.New(
		"RaiseDisputeCommand must be created via NewRaiseDisputeCommand constructor",
	)
	ErrDisputeReasonIsRequired = errors.New("dispute reason is required")
)

// RaiseDisputeCommand records a customer disagreement with the inspection
// outcome on a return order.
type RaiseDisputeCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRaiseDisputeCommand creates a command to raise a dispute.
func NewRaiseDisputeCommand(returnID kernel.UUID, reason string) (RaiseDisputeCommand, error) {
	cmd := RaiseDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setReason(reason),
	); err != nil {
		return RaiseDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseDisputeCommand) Validate() error {
	return c.guard.Validate(ErrRaiseDisputeCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c RaiseDisputeCommand) ReturnID() kernel.UUID { return c.returnID }

// Reason returns the customer's stated grounds for the dispute.
func (c RaiseDisputeCommand) Reason() string { return c.reason }

func (c *RaiseDisputeCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}

func (c *RaiseDisputeCommand) setReason(reason string) error {
	if reason == "" {
		return ErrDisputeReasonIsRequired
	}
	c.reason = reason
	return nil
}
