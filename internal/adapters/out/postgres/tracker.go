package postgres

import "fulfillment/internal/core/domain/model/kernel"

// ReadOnlyTracker satisfies the repositories' tracker contract for
// repositories constructed outside a unit of work, on read paths such as
// query handlers. It records nothing, so Update through a repository built
// with it always fails the loaded-version check.
type ReadOnlyTracker struct{}

// NewReadOnlyTracker creates a tracker for read-only repository use.
func NewReadOnlyTracker() ReadOnlyTracker {
	return ReadOnlyTracker{}
}

// TrackAggregate discards the tracked aggregate.
func (ReadOnlyTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// RecordLoadedVersion discards the loaded version.
func (ReadOnlyTracker) RecordLoadedVersion(_ kernel.UUID, _ int) {}

// LoadedVersion always reports that no version was recorded.
func (ReadOnlyTracker) LoadedVersion(_ kernel.UUID) (int, bool) {
	return 0, false
}
