package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"
)

// ReturnRepository defines the persistence contract for ReturnOrder
// aggregates.
type ReturnRepository interface {
	// Add persists a new return order to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *returns.ReturnOrder) error

	// Update persists changes to an existing return order.
	Update(ctx context.Context, aggregate *returns.ReturnOrder) error

	// Get retrieves a return order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*returns.ReturnOrder, error)

	// GetAllActive retrieves every return order that has not reached the
	// Completed status, in the order the requests were received.
	GetAllActive(ctx context.Context) ([]*returns.ReturnOrder, error)
}
