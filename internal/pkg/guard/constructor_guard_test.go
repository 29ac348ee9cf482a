package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NotNil(t, g)
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type timeSlot struct {
		label string
		guard guard.ConstructorGuard
	}

	var errTimeSlotNotConstructed = errors.New("timeSlot must be created via newTimeSlot")

	newTimeSlot := func(label string) (timeSlot, error) {
		if label == "" {
			return timeSlot{}, errors.New("label is required")
		}
		return timeSlot{label: label, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		slot, err := newTimeSlot("09:00-12:00")

		require.NoError(t, err)
		require.NoError(t, slot.guard.Validate(errTimeSlotNotConstructed))
		assert.Equal(t, "09:00-12:00", slot.label)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var slot timeSlot

		err := slot.guard.Validate(errTimeSlotNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errTimeSlotNotConstructed, err)
	})
}
