package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveReturnCommandIsNotConstructed = errors.New(
	"ApproveReturnCommand must be created via NewApproveReturnCommand constructor",
)

// ApproveReturnCommand accepts a return request. For courier collections the
// pickup date and time slot are required; self-returns ignore them.
type ApproveReturnCommand struct { //nolint:recvcheck //using for validation
	returnID   kernel.UUID
	pickupDate time.Time
	timeSlot   string

	guard guard.ConstructorGuard
}

// NewApproveReturnCommand creates a command to approve a return request.
// Schedule completeness for courier collections is enforced by the
// aggregate, which knows the declared collection method.
func NewApproveReturnCommand(
	returnID kernel.UUID,
	pickupDate time.Time,
	timeSlot string,
) (ApproveReturnCommand, error) {
	cmd := ApproveReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReturnID(returnID); err != nil {
		return ApproveReturnCommand{}, err
	}

	cmd.pickupDate = pickupDate
	cmd.timeSlot = timeSlot
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveReturnCommand) Validate() error {
	return c.guard.Validate(ErrApproveReturnCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c ApproveReturnCommand) ReturnID() kernel.UUID { return c.returnID }

// PickupDate returns the agreed pickup date, zero for self-returns.
func (c ApproveReturnCommand) PickupDate() time.Time { return c.pickupDate }

// TimeSlot returns the agreed pickup window, empty for self-returns.
func (c ApproveReturnCommand) TimeSlot() string { return c.timeSlot }

func (c *ApproveReturnCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}
