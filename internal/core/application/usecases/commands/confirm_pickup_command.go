package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrConfirmPickupCommandIsNotConstructed = errors.New(
		"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
	)
	ErrDriverIsRequired = errors.New("driver name and contact are required")
)

// ConfirmPickupCommand assigns the collection driver on the courier branch.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	returnID      kernel.UUID
	driverName    string
	driverContact string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm the pickup driver.
func NewConfirmPickupCommand(returnID kernel.UUID, driverName, driverContact string) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setDriver(driverName, driverContact),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c ConfirmPickupCommand) ReturnID() kernel.UUID { return c.returnID }

// DriverName returns the assigned driver's name.
func (c ConfirmPickupCommand) DriverName() string { return c.driverName }

// DriverContact returns the assigned driver's contact.
func (c ConfirmPickupCommand) DriverContact() string { return c.driverContact }

func (c *ConfirmPickupCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}

func (c *ConfirmPickupCommand) setDriver(name, contact string) error {
	if name == "" || contact == "" {
		return ErrDriverIsRequired
	}
	c.driverName = name
	c.driverContact = contact
	return nil
}
