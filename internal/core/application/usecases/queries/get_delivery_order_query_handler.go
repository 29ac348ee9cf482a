package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetDeliveryOrderQueryHandler builds the delivery-order view on demand from
// the live fulfillment sets. Unlike the materialized projection refreshed by
// the cron job, this path always reflects the current aggregate state.
type GetDeliveryOrderQueryHandler struct {
	shipments  ports.ShipmentRepository
	aggregator services.OrderAggregator
}

// NewGetDeliveryOrderQueryHandler creates a handler for delivery-order
// lookups.
func NewGetDeliveryOrderQueryHandler(
	shipments ports.ShipmentRepository,
	aggregator services.OrderAggregator,
) GetDeliveryOrderQueryHandler {
	return GetDeliveryOrderQueryHandler{
		shipments:  shipments,
		aggregator: aggregator,
	}
}

// Handle loads every set carrying the number and folds them into one view.
// Returns an object-not-found error when no set carries the number.
func (h GetDeliveryOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrderQuery,
) (services.DeliveryOrderView, error) {
	if err := query.Validate(); err != nil {
		return services.DeliveryOrderView{}, err
	}

	sets, err := h.shipments.GetByDeliveryOrder(ctx, query.DeliveryOrderNo())
	if err != nil {
		return services.DeliveryOrderView{}, err
	}
	if len(sets) == 0 {
		return services.DeliveryOrderView{},
			errs.NewObjectNotFoundError("delivery order", query.DeliveryOrderNo())
	}

	return h.aggregator.BuildDeliveryOrderView(sets)
}
