package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrConfirmFulfillmentSetCommandIsNotConstructed = errors.New(
		"ConfirmFulfillmentSetCommand must be created via NewConfirmFulfillmentSetCommand constructor",
	)
	ErrDeliveryDateIsRequired = errors.New("delivery date is required")
	ErrTimeSlotIsRequired     = errors.New("time slot is required")
)

// ConfirmFulfillmentSetCommand records the customer's acceptance of a quote
// together with the agreed delivery date and time slot.
type ConfirmFulfillmentSetCommand struct { //nolint:recvcheck //using for validation
	setID    kernel.UUID
	date     time.Time
	timeSlot string

	guard guard.ConstructorGuard
}

// NewConfirmFulfillmentSetCommand creates a command to confirm a quoted set.
func NewConfirmFulfillmentSetCommand(
	setID kernel.UUID,
	date time.Time,
	timeSlot string,
) (ConfirmFulfillmentSetCommand, error) {
	cmd := ConfirmFulfillmentSetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSetID(setID),
		cmd.setSchedule(date, timeSlot),
	); err != nil {
		return ConfirmFulfillmentSetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmFulfillmentSetCommand) Validate() error {
	return c.guard.Validate(ErrConfirmFulfillmentSetCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c ConfirmFulfillmentSetCommand) SetID() kernel.UUID { return c.setID }

// Date returns the agreed delivery date.
func (c ConfirmFulfillmentSetCommand) Date() time.Time { return c.date }

// TimeSlot returns the agreed delivery window.
func (c ConfirmFulfillmentSetCommand) TimeSlot() string { return c.timeSlot }

func (c *ConfirmFulfillmentSetCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}

func (c *ConfirmFulfillmentSetCommand) setSchedule(date time.Time, timeSlot string) error {
	if date.IsZero() {
		return ErrDeliveryDateIsRequired
	}
	if timeSlot == "" {
		return ErrTimeSlotIsRequired
	}
	c.date = date
	c.timeSlot = timeSlot
	return nil
}
