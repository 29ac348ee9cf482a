package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteReturnCommandIsNotConstructed = errors.New(
	"CompleteReturnCommand must be created via NewCompleteReturnCommand constructor",
)

// CompleteReturnCommand closes a notified return: inventory and statement of
// account are flagged as updated and the order becomes terminal.
type CompleteReturnCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteReturnCommand creates a command to complete a return.
func NewCompleteReturnCommand(returnID kernel.UUID) (CompleteReturnCommand, error) {
	cmd := CompleteReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReturnID(returnID); err != nil {
		return CompleteReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteReturnCommand) Validate() error {
	return c.guard.Validate(ErrCompleteReturnCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c CompleteReturnCommand) ReturnID() kernel.UUID { return c.returnID }

func (c *CompleteReturnCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}
