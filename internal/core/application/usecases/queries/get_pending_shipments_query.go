package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPendingShipmentsQueryIsNotConstructed = errors.New(
	"GetPendingShipmentsQuery must be created via NewGetPendingShipmentsQuery constructor",
)

// GetPendingShipmentsQuery retrieves every fulfillment set that has not yet
// completed its handover, for workload monitoring across requests.
type GetPendingShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingShipmentsQuery creates a query for uncompleted sets. This is
// a parameterless query.
func NewGetPendingShipmentsQuery() GetPendingShipmentsQuery {
	return GetPendingShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingShipmentsQueryIsNotConstructed)
}

// GetPendingShipmentsQueryResponse is one uncompleted fulfillment set.
type GetPendingShipmentsQueryResponse struct {
	ID              kernel.UUID
	RequestID       kernel.UUID
	Ordinal         int
	Label           string
	Status          string
	DeliveryOrderNo string
}
