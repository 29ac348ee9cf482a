package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteLoadingCommandIsNotConstructed = errors.New(
	"CompleteLoadingCommand must be created via NewCompleteLoadingCommand constructor",
)

// CompleteLoadingCommand finishes the pack-and-load step. Driver and vehicle
// are required for delivery-kind sets and ignored for pickup-kind sets; the
// aggregate enforces the distinction.
type CompleteLoadingCommand struct { //nolint:recvcheck //using for validation
	setID   kernel.UUID
	driver  string
	vehicle string
	photos  []string

	guard guard.ConstructorGuard
}

// NewCompleteLoadingCommand creates a command to complete loading.
func NewCompleteLoadingCommand(
	setID kernel.UUID,
	driver, vehicle string,
	photos []string,
) (CompleteLoadingCommand, error) {
	cmd := CompleteLoadingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSetID(setID); err != nil {
		return CompleteLoadingCommand{}, err
	}

	cmd.driver = driver
	cmd.vehicle = vehicle
	cmd.photos = append([]string(nil), photos...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteLoadingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteLoadingCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c CompleteLoadingCommand) SetID() kernel.UUID { return c.setID }

// Driver returns the dispatch driver name.
func (c CompleteLoadingCommand) Driver() string { return c.driver }

// Vehicle returns the dispatch vehicle number.
func (c CompleteLoadingCommand) Vehicle() string { return c.vehicle }

// Photos returns the loading evidence photo references.
func (c CompleteLoadingCommand) Photos() []string {
	return append([]string(nil), c.photos...)
}

func (c *CompleteLoadingCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}
