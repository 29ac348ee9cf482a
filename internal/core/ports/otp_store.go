package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/otp"
)

// ChallengeStore keeps at most one outstanding one-time-code challenge per
// fulfillment unit. Putting a new challenge for a unit replaces the previous
// one, which is what makes only the latest issued code verifiable. Codes do
// not expire; a challenge lives until replaced or removed.
type ChallengeStore interface {
	// Put stores the challenge under its unit identifier, replacing any
	// previous challenge for that unit.
	Put(ctx context.Context, challenge otp.Challenge) error

	// Get retrieves the outstanding challenge for a unit.
	// Returns errs.ErrObjectNotFound wrapped when none exists.
	Get(ctx context.Context, unitID kernel.UUID) (otp.Challenge, error)

	// Remove deletes the outstanding challenge for a unit. Removing a
	// missing challenge is not an error.
	Remove(ctx context.Context, unitID kernel.UUID) error
}
