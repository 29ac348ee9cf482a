package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCheckStockCommandIsNotConstructed = errors.New(
	"CheckStockCommand must be created via NewCheckStockCommand constructor",
)

// CheckStockCommand records warehouse availability for every item on the
// set's packing list. Insufficient stock is reported back as a warning, not
// an error: the workflow proceeds either way and a human decides.
type CheckStockCommand struct { //nolint:recvcheck //using for validation
	setID kernel.UUID
	actor string
	notes string

	guard guard.ConstructorGuard
}

// NewCheckStockCommand creates a command to run the stock check.
func NewCheckStockCommand(setID kernel.UUID, actor, notes string) (CheckStockCommand, error) {
	cmd := CheckStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSetID(setID),
		cmd.setActor(actor),
	); err != nil {
		return CheckStockCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckStockCommand) Validate() error {
	return c.guard.Validate(ErrCheckStockCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c CheckStockCommand) SetID() kernel.UUID { return c.setID }

// Actor returns the staff member performing the check.
func (c CheckStockCommand) Actor() string { return c.actor }

// Notes returns free-form remarks recorded with the check.
func (c CheckStockCommand) Notes() string { return c.notes }

func (c *CheckStockCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}

func (c *CheckStockCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
