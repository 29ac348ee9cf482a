package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordAtOriginCommandIsNotConstructed = errors.New(
		"RecordAtOriginCommand must be created via NewRecordAtOriginCommand constructor",
	)
	ErrPhotosAreRequired = errors.New("at least one photo reference is required")
)

// RecordAtOriginCommand captures the driver's condition evidence at the
// customer site before the goods travel back.
type RecordAtOriginCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID
	photos   []string

	guard guard.ConstructorGuard
}

// NewRecordAtOriginCommand creates a command to record origin evidence.
func NewRecordAtOriginCommand(returnID kernel.UUID, photos []string) (RecordAtOriginCommand, error) {
	cmd := RecordAtOriginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setPhotos(photos),
	); err != nil {
		return RecordAtOriginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordAtOriginCommand) Validate() error {
	return c.guard.Validate(ErrRecordAtOriginCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c RecordAtOriginCommand) ReturnID() kernel.UUID { return c.returnID }

// Photos returns the evidence photo references.
func (c RecordAtOriginCommand) Photos() []string {
	return append([]string(nil), c.photos...)
}

func (c *RecordAtOriginCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}

func (c *RecordAtOriginCommand) setPhotos(photos []string) error {
	if len(photos) == 0 {
		return ErrPhotosAreRequired
	}
	c.photos = append([]string(nil), photos...)
	return nil
}
