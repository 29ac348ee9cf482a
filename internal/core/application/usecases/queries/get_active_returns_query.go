package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveReturnsQueryIsNotConstructed = errors.New(
	"GetActiveReturnsQuery must be created via NewGetActiveReturnsQuery constructor",
)

// GetActiveReturnsQuery retrieves every return order that has not reached
// its terminal status.
type GetActiveReturnsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveReturnsQuery creates a query for active returns. This is a
// parameterless query.
func NewGetActiveReturnsQuery() GetActiveReturnsQuery {
	return GetActiveReturnsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveReturnsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveReturnsQueryIsNotConstructed)
}

// GetActiveReturnsQueryResponse is one in-flight return order.
type GetActiveReturnsQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	Method       string
	ReceivedAt   *time.Time
}
