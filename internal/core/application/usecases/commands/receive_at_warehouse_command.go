package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReceiveAtWarehouseCommandIsNotConstructed = errors.New(
	"ReceiveAtWarehouseCommand must be created via NewReceiveAtWarehouseCommand constructor",
)

// ReceiveAtWarehouseCommand records warehouse receipt of returned goods,
// converging the courier and self-return branches.
type ReceiveAtWarehouseCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID
	photos   []string

	guard guard.ConstructorGuard
}

// NewReceiveAtWarehouseCommand creates a command to record warehouse
// receipt.
func NewReceiveAtWarehouseCommand(returnID kernel.UUID, photos []string) (ReceiveAtWarehouseCommand, error) {
	cmd := ReceiveAtWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setPhotos(photos),
	); err != nil {
		return ReceiveAtWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveAtWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReceiveAtWarehouseCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c ReceiveAtWarehouseCommand) ReturnID() kernel.UUID { return c.returnID }

// Photos returns the receipt evidence photo references.
func (c ReceiveAtWarehouseCommand) Photos() []string {
	return append([]string(nil), c.photos...)
}

func (c *ReceiveAtWarehouseCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}

func (c *ReceiveAtWarehouseCommand) setPhotos(photos []string) error {
	if len(photos) == 0 {
		return ErrPhotosAreRequired
	}
	c.photos = append([]string(nil), photos...)
	return nil
}
