package otp_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChallenge(t *testing.T) {
	t.Run("issues a six digit numeric code", func(t *testing.T) {
		unitID := kernel.NewUUID()

		challenge, err := otp.NewChallenge(unitID, "+60123456789")

		require.NoError(t, err)
		assert.True(t, challenge.UnitID().IsEqual(unitID))
		assert.Equal(t, "+60123456789", challenge.Recipient())
		assert.Len(t, challenge.Code(), 6)
		for _, r := range challenge.Code() {
			assert.Contains(t, "0123456789", string(r))
		}
		assert.False(t, challenge.IsConsumed())
		assert.False(t, challenge.IssuedAt().IsZero())
	})

	t.Run("fails without a recipient", func(t *testing.T) {
		_, err := otp.NewChallenge(kernel.NewUUID(), "")

		require.ErrorIs(t, err, otp.ErrNoRecipientSelected)
	})

	t.Run("fails with a zero unit ID", func(t *testing.T) {
		var zero kernel.UUID

		_, err := otp.NewChallenge(zero, "+60123456789")

		require.Error(t, err)
	})
}

func TestChallenge_Verify(t *testing.T) {
	t.Run("succeeds once on exact match", func(t *testing.T) {
		challenge, err := otp.NewChallenge(kernel.NewUUID(), "+60123456789")
		require.NoError(t, err)

		verified, err := challenge.Verify(challenge.Code())

		require.NoError(t, err)
		assert.True(t, verified.IsConsumed())
	})

	t.Run("fails on mismatch without consuming", func(t *testing.T) {
		challenge, err := otp.NewChallenge(kernel.NewUUID(), "+60123456789")
		require.NoError(t, err)

		unchanged, err := challenge.Verify("000000x")

		require.ErrorIs(t, err, otp.ErrInvalidOTP)
		assert.False(t, unchanged.IsConsumed())

		// Still verifiable afterwards.
		_, err = unchanged.Verify(challenge.Code())
		require.NoError(t, err)
	})

	t.Run("fails on empty code", func(t *testing.T) {
		challenge, err := otp.NewChallenge(kernel.NewUUID(), "+60123456789")
		require.NoError(t, err)

		_, err = challenge.Verify("")

		require.ErrorIs(t, err, otp.ErrInvalidOTP)
	})

	t.Run("consumed challenge never verifies again", func(t *testing.T) {
		challenge, err := otp.NewChallenge(kernel.NewUUID(), "+60123456789")
		require.NoError(t, err)
		consumed, err := challenge.Verify(challenge.Code())
		require.NoError(t, err)

		_, err = consumed.Verify(challenge.Code())

		require.ErrorIs(t, err, otp.ErrChallengeConsumed)
	})
}

func TestRestoreChallenge(t *testing.T) {
	t.Run("round-trips through the store representation", func(t *testing.T) {
		original, err := otp.NewChallenge(kernel.NewUUID(), "+60123456789")
		require.NoError(t, err)

		restored, err := otp.RestoreChallenge(
			original.ID(), original.UnitID(), original.Recipient(),
			original.Code(), original.IssuedAt(), false)

		require.NoError(t, err)
		assert.Equal(t, original.Code(), restored.Code())
		assert.True(t, original.ID().IsEqual(restored.ID()))
	})

	t.Run("rejects missing recipient", func(t *testing.T) {
		_, err := otp.RestoreChallenge(
			kernel.NewUUID(), kernel.NewUUID(), "", "123456", time.Now(), false)

		require.ErrorIs(t, err, otp.ErrNoRecipientSelected)
	})
}
