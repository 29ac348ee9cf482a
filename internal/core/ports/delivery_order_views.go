package ports

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// DeliveryOrderViews persists the materialized delivery-order read models
// produced by the aggregator. The table is a denormalized projection for
// reporting; the authoritative state always lives in the fulfillment sets.
type DeliveryOrderViews interface {
	// Replace atomically swaps the stored projection for the supplied views.
	Replace(ctx context.Context, views []services.DeliveryOrderView) error
}
