package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPackingCommandIsNotConstructed = errors.New(
	"StartPackingCommand must be created via NewStartPackingCommand constructor",
)

// StartPackingCommand begins the pack-and-load step for a stock-checked set.
type StartPackingCommand struct { //nolint:recvcheck //using for validation
	setID kernel.UUID
	actor string

	guard guard.ConstructorGuard
}

// NewStartPackingCommand creates a command to start packing.
func NewStartPackingCommand(setID kernel.UUID, actor string) (StartPackingCommand, error) {
	cmd := StartPackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSetID(setID),
		cmd.setActor(actor),
	); err != nil {
		return StartPackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPackingCommand) Validate() error {
	return c.guard.Validate(ErrStartPackingCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c StartPackingCommand) SetID() kernel.UUID { return c.setID }

// Actor returns the staff member starting the packing.
func (c StartPackingCommand) Actor() string { return c.actor }

func (c *StartPackingCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}

func (c *StartPackingCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
