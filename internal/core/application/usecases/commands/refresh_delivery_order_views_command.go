package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrRefreshDeliveryOrderViewsCommandIsNotConstructed = errors.New(
	"RefreshDeliveryOrderViewsCommand must be created via NewRefreshDeliveryOrderViewsCommand constructor",
)

// RefreshDeliveryOrderViewsCommand rebuilds the materialized delivery-order
// projection from the live fulfillment sets. Parameterless; driven by the
// periodic refresh job.
type RefreshDeliveryOrderViewsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshDeliveryOrderViewsCommand creates a command to rebuild the
// projection.
func NewRefreshDeliveryOrderViewsCommand() RefreshDeliveryOrderViewsCommand {
	return RefreshDeliveryOrderViewsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshDeliveryOrderViewsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDeliveryOrderViewsCommandIsNotConstructed)
}
