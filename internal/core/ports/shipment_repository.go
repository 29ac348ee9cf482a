package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for FulfillmentSet
// aggregates. Provides methods for storing, retrieving, and querying sets by
// request and delivery-order membership.
type ShipmentRepository interface {
	// Add persists a new fulfillment set to storage.
	// The set must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.FulfillmentSet) error

	// Update persists changes to an existing fulfillment set.
	// The set must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.FulfillmentSet) error

	// Get retrieves a fulfillment set by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.FulfillmentSet, error)

	// GetByRequest retrieves every set belonging to a customer request,
	// ordered by ordinal. Used by the sequential gate to inspect siblings.
	GetByRequest(ctx context.Context, requestID kernel.UUID) ([]*shipment.FulfillmentSet, error)

	// GetByDeliveryOrder retrieves every set carrying the delivery-order
	// number. Used by the aggregator to build the delivery-order view.
	GetByDeliveryOrder(ctx context.Context, doNumber string) ([]*shipment.FulfillmentSet, error)

	// GetAllWithDeliveryOrder retrieves all sets that have a delivery-order
	// number and are not yet completed. Feeds the periodic view refresh.
	GetAllWithDeliveryOrder(ctx context.Context) ([]*shipment.FulfillmentSet, error)
}
