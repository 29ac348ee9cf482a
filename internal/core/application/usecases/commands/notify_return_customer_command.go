package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrNotifyReturnCustomerCommandIsNotConstructed = errors.New(
		"NotifyReturnCustomerCommand must be created via NewNotifyReturnCustomerCommand constructor",
	)
	ErrMessageIsRequired = errors.New("notification subject and body are required")
)

// NotifyReturnCustomerCommand sends the return-outcome notification to the
// customer and records the fact on the order.
type NotifyReturnCustomerCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID
	subject  string
	body     string

	guard guard.ConstructorGuard
}

// NewNotifyReturnCustomerCommand creates a command to notify the customer.
func NewNotifyReturnCustomerCommand(returnID kernel.UUID, subject, body string) (NotifyReturnCustomerCommand, error) {
	cmd := NotifyReturnCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setMessage(subject, body),
	); err != nil {
		return NotifyReturnCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyReturnCustomerCommand) Validate() error {
	return c.guard.Validate(ErrNotifyReturnCustomerCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c NotifyReturnCustomerCommand) ReturnID() kernel.UUID { return c.returnID }

// Subject returns the notification subject line.
func (c NotifyReturnCustomerCommand) Subject() string { return c.subject }

// Body returns the notification body.
func (c NotifyReturnCustomerCommand) Body() string { return c.body }

func (c *NotifyReturnCustomerCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}

func (c *NotifyReturnCustomerCommand) setMessage(subject, body string) error {
	if subject == "" || body == "" {
		return ErrMessageIsRequired
	}
	c.subject = subject
	c.body = body
	return nil
}
