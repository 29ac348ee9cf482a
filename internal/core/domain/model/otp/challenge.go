// Package otp contains the one-time-code challenge binding a customer
// contact to a fulfillment unit as proof of receipt. A challenge verifies at
// most once, only against the exact code issued for its unit; re-issuing for
// the same unit replaces the previous challenge (latest code wins). There is
// no expiry window.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

const codeDigits = 6

var (
	// ErrNoRecipientSelected is returned when a challenge is issued without a
	// recipient contact.
	ErrNoRecipientSelected = errors.New("a recipient contact is required to send a one-time code")

	// ErrInvalidOTP is returned when the supplied code does not match the
	// last-issued code for the unit. Verification does not consume the
	// challenge; the caller may retry with a fresh code.
	ErrInvalidOTP = errors.New("one-time code does not match")

	// ErrChallengeConsumed is returned when verifying a challenge that
	// already succeeded once.
	ErrChallengeConsumed = errors.New("one-time code was already used")
)

// Challenge is a single-use numeric code bound to one fulfillment unit and
// one recipient contact.
type Challenge struct {
	id        kernel.UUID
	unitID    kernel.UUID
	recipient string
	code      string
	issuedAt  time.Time
	consumed  bool
}

// NewChallenge issues a fresh 6-digit code for the unit. Storing it under
// the unit key replaces any outstanding challenge, which is how "only the
// latest code verifies" is enforced.
func NewChallenge(unitID kernel.UUID, recipient string) (Challenge, error) {
	if err := unitID.Validate(); err != nil {
		return Challenge{}, err
	}
	if recipient == "" {
		return Challenge{}, ErrNoRecipientSelected
	}

	code, err := generateCode()
	if err != nil {
		return Challenge{}, err
	}

	return Challenge{
		id:        kernel.NewUUID(),
		unitID:    unitID,
		recipient: recipient,
		code:      code,
		issuedAt:  time.Now().UTC(),
	}, nil
}

// RestoreChallenge reconstructs a challenge from the challenge store.
func RestoreChallenge(
	id, unitID kernel.UUID,
	recipient, code string,
	issuedAt time.Time,
	consumed bool,
) (Challenge, error) {
	if err := errors.Join(id.Validate(), unitID.Validate()); err != nil {
		return Challenge{}, err
	}
	if recipient == "" {
		return Challenge{}, ErrNoRecipientSelected
	}

	return Challenge{
		id:        id,
		unitID:    unitID,
		recipient: recipient,
		code:      code,
		issuedAt:  issuedAt,
		consumed:  consumed,
	}, nil
}

// ID returns the challenge identifier.
func (c Challenge) ID() kernel.UUID { return c.id }

// UnitID returns the bound fulfillment-unit identifier.
func (c Challenge) UnitID() kernel.UUID { return c.unitID }

// Recipient returns the bound contact the code was dispatched to.
func (c Challenge) Recipient() string { return c.recipient }

// Code returns the issued code, handed to the notification collaborator for
// dispatch.
func (c Challenge) Code() string { return c.code }

// IssuedAt returns the issue timestamp.
func (c Challenge) IssuedAt() time.Time { return c.issuedAt }

// IsConsumed reports whether the challenge already verified once.
func (c Challenge) IsConsumed() bool { return c.consumed }

// Verify checks the supplied code against the issued one. On match it
// returns the consumed challenge; a consumed challenge never verifies again.
// A mismatch returns ErrInvalidOTP and leaves the challenge unchanged.
func (c Challenge) Verify(suppliedCode string) (Challenge, error) {
	if c.consumed {
		return c, ErrChallengeConsumed
	}
	if suppliedCode == "" || suppliedCode != c.code {
		return c, ErrInvalidOTP
	}

	c.consumed = true
	return c, nil
}

func generateCode() (string, error) {
	limit := big.NewInt(1)
	for range codeDigits {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate one-time code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
