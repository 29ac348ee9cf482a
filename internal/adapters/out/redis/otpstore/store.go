// Package otpstore keeps outstanding one-time-code challenges in Redis.
// One key per fulfillment unit; SET overwrites unconditionally, which is
// what makes only the latest issued code verifiable. Keys carry no TTL:
// codes do not expire, a challenge lives until replaced or removed.
package otpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// challengeDTO is the JSON shape stored under the unit key.
type challengeDTO struct {
	ID        uuid.UUID `json:"id"`
	UnitID    uuid.UUID `json:"unit_id"`
	Recipient string    `json:"recipient"`
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	Consumed  bool      `json:"consumed"`
}

// RedisChallengeStore implements ChallengeStore on a Redis client.
type RedisChallengeStore struct {
	client *redis.Client
}

// NewRedisChallengeStore creates a Redis-backed challenge store.
func NewRedisChallengeStore(client *redis.Client) *RedisChallengeStore {
	return &RedisChallengeStore{client: client}
}

// Put stores the challenge under its unit identifier, replacing any previous
// challenge for that unit.
func (s *RedisChallengeStore) Put(ctx context.Context, challenge otp.Challenge) error {
	payload, err := json.Marshal(challengeDTO{
		ID:        challenge.ID().Bytes(),
		UnitID:    challenge.UnitID().Bytes(),
		Recipient: challenge.Recipient(),
		Code:      challenge.Code(),
		IssuedAt:  challenge.IssuedAt(),
		Consumed:  challenge.IsConsumed(),
	})
	if err != nil {
		return fmt.Errorf("marshal challenge: %w", err)
	}

	return s.client.Set(ctx, key(challenge.UnitID()), payload, 0).Err()
}

// Get retrieves the outstanding challenge for a unit. Returns a wrapped
// errs.ErrObjectNotFound when none exists.
func (s *RedisChallengeStore) Get(ctx context.Context, unitID kernel.UUID) (otp.Challenge, error) {
	if err := unitID.Validate(); err != nil {
		return otp.Challenge{}, err
	}

	payload, err := s.client.Get(ctx, key(unitID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return otp.Challenge{}, errs.NewObjectNotFoundError("otp challenge", unitID.String())
		}
		return otp.Challenge{}, err
	}

	var dto challengeDTO
	if err = json.Unmarshal(payload, &dto); err != nil {
		return otp.Challenge{}, fmt.Errorf("unmarshal challenge: %w", err)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return otp.Challenge{}, err
	}
	challengeUnitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return otp.Challenge{}, err
	}

	return otp.RestoreChallenge(id, challengeUnitID, dto.Recipient, dto.Code, dto.IssuedAt, dto.Consumed)
}

// Remove deletes the outstanding challenge for a unit. Removing a missing
// challenge is not an error.
func (s *RedisChallengeStore) Remove(ctx context.Context, unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	return s.client.Del(ctx, key(unitID)).Err()
}

func key(unitID kernel.UUID) string {
	return keyPrefix + unitID.String()
}
