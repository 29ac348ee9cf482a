package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrFinalizeSortingCommandIsNotConstructed = errors.New(
	"FinalizeSortingCommand must be created via NewFinalizeSortingCommand constructor",
)

// FinalizeSortingCommand closes the sorting step after inspection. The
// operator either generates a returned-condition form or explicitly skips
// it; both paths land on SortingComplete.
type FinalizeSortingCommand struct { //nolint:recvcheck //using for validation
	returnID     kernel.UUID
	generateForm bool

	guard guard.ConstructorGuard
}

// NewFinalizeSortingCommand creates a command to finalize sorting.
func NewFinalizeSortingCommand(returnID kernel.UUID, generateForm bool) (FinalizeSortingCommand, error) {
	cmd := FinalizeSortingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReturnID(returnID); err != nil {
		return FinalizeSortingCommand{}, err
	}

	cmd.generateForm = generateForm
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeSortingCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeSortingCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c FinalizeSortingCommand) ReturnID() kernel.UUID { return c.returnID }

// GenerateForm reports whether a returned-condition form should be issued.
func (c FinalizeSortingCommand) GenerateForm() bool { return c.generateForm }

func (c *FinalizeSortingCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}
