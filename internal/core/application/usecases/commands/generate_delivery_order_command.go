package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGenerateDeliveryOrderCommandIsNotConstructed = errors.New(
	"GenerateDeliveryOrderCommand must be created via NewGenerateDeliveryOrderCommand constructor",
)

// GenerateDeliveryOrderCommand assigns a delivery-order number to a
// confirmed set. When JoinNumber is empty a fresh number is issued from the
// document sequence; otherwise the set joins an existing delivery order so
// that several sets travel under one document.
type GenerateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	setID      kernel.UUID
	joinNumber string

	guard guard.ConstructorGuard
}

// NewGenerateDeliveryOrderCommand creates a command to assign a delivery
// order. Pass an empty joinNumber to issue a fresh number.
func NewGenerateDeliveryOrderCommand(setID kernel.UUID, joinNumber string) (GenerateDeliveryOrderCommand, error) {
	cmd := GenerateDeliveryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSetID(setID); err != nil {
		return GenerateDeliveryOrderCommand{}, err
	}

	cmd.joinNumber = joinNumber
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDeliveryOrderCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c GenerateDeliveryOrderCommand) SetID() kernel.UUID { return c.setID }

// JoinNumber returns the existing delivery-order number to join, empty for a
// fresh one.
func (c GenerateDeliveryOrderCommand) JoinNumber() string { return c.joinNumber }

func (c *GenerateDeliveryOrderCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}
