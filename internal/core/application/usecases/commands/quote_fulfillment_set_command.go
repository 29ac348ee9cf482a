package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrQuoteFulfillmentSetCommandIsNotConstructed = errors.New(
		"QuoteFulfillmentSetCommand must be created via NewQuoteFulfillmentSetCommand constructor",
	)
	ErrAmountIsNegative = errors.New("quoted amount and delivery fee must not be negative")
)

// QuoteFulfillmentSetCommand issues a delivery quote for a fulfillment set.
// The handler refuses to quote a set whose immediate predecessor has not yet
// been handed off.
type QuoteFulfillmentSetCommand struct { //nolint:recvcheck //using for validation
	setID  kernel.UUID
	amount decimal.Decimal
	fee    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewQuoteFulfillmentSetCommand creates a command to quote a set. Amounts
// must not be negative.
func NewQuoteFulfillmentSetCommand(setID kernel.UUID, amount, fee decimal.Decimal) (QuoteFulfillmentSetCommand, error) {
	cmd := QuoteFulfillmentSetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSetID(setID),
		cmd.setAmounts(amount, fee),
	); err != nil {
		return QuoteFulfillmentSetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c QuoteFulfillmentSetCommand) Validate() error {
	return c.guard.Validate(ErrQuoteFulfillmentSetCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c QuoteFulfillmentSetCommand) SetID() kernel.UUID { return c.setID }

// Amount returns the quoted rental amount.
func (c QuoteFulfillmentSetCommand) Amount() decimal.Decimal { return c.amount }

// Fee returns the quoted delivery fee.
func (c QuoteFulfillmentSetCommand) Fee() decimal.Decimal { return c.fee }

func (c *QuoteFulfillmentSetCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}

func (c *QuoteFulfillmentSetCommand) setAmounts(amount, fee decimal.Decimal) error {
	if amount.IsNegative() || fee.IsNegative() {
		return ErrAmountIsNegative
	}
	c.amount = amount
	c.fee = fee
	return nil
}
