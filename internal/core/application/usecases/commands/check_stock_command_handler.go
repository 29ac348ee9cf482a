package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// CheckStockResult reports the outcome of a stock check.
type CheckStockResult struct {
	// AllAvailable is false when any manifest item has less recorded stock
	// than its required quantity. A warning for the operator, never a
	// blocker.
	AllAvailable bool
}

// CheckStockCommandHandler runs the stock-availability check against the
// warehouse levels oracle and records the result on the set.
type CheckStockCommandHandler struct {
	uowFactory ShipmentUoWFactory
	stock      ports.StockLevels
}

// NewCheckStockCommandHandler creates a handler for stock checks.
func NewCheckStockCommandHandler(
	uowFactory ShipmentUoWFactory,
	stock ports.StockLevels,
) CheckStockCommandHandler {
	return CheckStockCommandHandler{
		uowFactory: uowFactory,
		stock:      stock,
	}
}

// Handle processes the stock check. The set always advances to StockChecked;
// the result carries the availability warning.
func (h *CheckStockCommandHandler) Handle(ctx context.Context, cmd CheckStockCommand) (CheckStockResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckStockResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckStockResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	set, err := repo.Get(ctx, cmd.SetID())
	if err != nil {
		return CheckStockResult{}, err
	}

	names := make([]string, 0, len(set.Items()))
	for _, item := range set.Items() {
		names = append(names, item.Name())
	}

	levels, err := h.stock.Levels(ctx, names)
	if err != nil {
		return CheckStockResult{}, err
	}

	allAvailable, err := set.CheckStock(levels, cmd.Actor(), cmd.Notes())
	if err != nil {
		return CheckStockResult{}, err
	}

	if err = repo.Update(ctx, set); err != nil {
		return CheckStockResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckStockResult{}, err
	}

	return CheckStockResult{AllAvailable: allAvailable}, nil
}
