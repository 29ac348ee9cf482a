package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// RefreshDeliveryOrderViewsCommandHandler recomputes the delivery-order read
// models from scratch and swaps them into the projection store. The
// projection serves reporting; command and query paths always read the live
// sets.
type RefreshDeliveryOrderViewsCommandHandler struct {
	uowFactory ShipmentUoWFactory
	aggregator services.OrderAggregator
	views      ports.DeliveryOrderViews
}

// NewRefreshDeliveryOrderViewsCommandHandler creates a handler for the
// projection refresh.
func NewRefreshDeliveryOrderViewsCommandHandler(
	uowFactory ShipmentUoWFactory,
	aggregator services.OrderAggregator,
	views ports.DeliveryOrderViews,
) RefreshDeliveryOrderViewsCommandHandler {
	return RefreshDeliveryOrderViewsCommandHandler{
		uowFactory: uowFactory,
		aggregator: aggregator,
		views:      views,
	}
}

// Handle rebuilds one view per delivery order from every set that carries a
// delivery-order number.
func (h *RefreshDeliveryOrderViewsCommandHandler) Handle(ctx context.Context, cmd RefreshDeliveryOrderViewsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sets, err := uow.ShipmentRepository().GetAllWithDeliveryOrder(ctx)
	if err != nil {
		return err
	}

	grouped := make(map[string][]*shipment.FulfillmentSet)
	var order []string
	for _, set := range sets {
		doNumber := set.DeliveryOrderNo()
		if doNumber == nil {
			continue
		}
		if _, seen := grouped[*doNumber]; !seen {
			order = append(order, *doNumber)
		}
		grouped[*doNumber] = append(grouped[*doNumber], set)
	}

	views := make([]services.DeliveryOrderView, 0, len(order))
	for _, doNumber := range order {
		view, err := h.aggregator.BuildDeliveryOrderView(grouped[doNumber])
		if err != nil {
			return err
		}
		views = append(views, view)
	}

	if err = h.views.Replace(ctx, views); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
