package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuoteFulfillmentSetCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		setID := kernel.NewUUID()

		cmd, err := commands.NewQuoteFulfillmentSetCommand(
			setID, decimal.NewFromInt(1000), decimal.NewFromInt(50))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.SetID().IsEqual(setID))
		assert.True(t, cmd.Amount().Equal(decimal.NewFromInt(1000)))
		assert.True(t, cmd.Fee().Equal(decimal.NewFromInt(50)))
	})

	t.Run("rejects a zero set ID", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewQuoteFulfillmentSetCommand(
			zero, decimal.NewFromInt(1000), decimal.NewFromInt(50))

		require.Error(t, err)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := commands.NewQuoteFulfillmentSetCommand(
			kernel.NewUUID(), decimal.NewFromInt(-1), decimal.NewFromInt(50))

		require.ErrorIs(t, err, commands.ErrAmountIsNegative)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.QuoteFulfillmentSetCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrQuoteFulfillmentSetCommandIsNotConstructed)
	})
}
