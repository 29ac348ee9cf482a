// Package queries contains read-only operations over the fulfillment store.
// Query handlers bypass the aggregates where a flat read model suffices, and
// reuse the domain aggregator where the read model is the merged
// delivery-order view.
package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDeliveryOrderQueryIsNotConstructed = errors.New(
		"GetDeliveryOrderQuery must be created via NewGetDeliveryOrderQuery constructor",
	)
	ErrDeliveryOrderNumberIsRequired = errors.New("delivery order number is required")
)

// GetDeliveryOrderQuery retrieves the merged view for one delivery order:
// every fulfillment set sharing the number, folded by the aggregator.
//
// Example:
//
//	query, _ := NewGetDeliveryOrderQuery("DO-0001")
//	handler := NewGetDeliveryOrderQueryHandler(repo, aggregator)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get delivery order: %w", err)
//	}
//	fmt.Printf("%s: %s, %d items\n", view.DeliveryOrderNo, view.Status, len(view.Items))
type GetDeliveryOrderQuery struct { //nolint:recvcheck //using for validation
	doNumber string

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrderQuery creates a query for one delivery order.
func NewGetDeliveryOrderQuery(doNumber string) (GetDeliveryOrderQuery, error) {
	query := GetDeliveryOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if doNumber == "" {
		return GetDeliveryOrderQuery{}, ErrDeliveryOrderNumberIsRequired
	}

	query.doNumber = doNumber
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrderQueryIsNotConstructed)
}

// DeliveryOrderNo returns the requested delivery-order number.
func (q GetDeliveryOrderQuery) DeliveryOrderNo() string { return q.doNumber }
