package ports

import (
	"context"
)

// StockLevels reads current warehouse availability. The returned map is
// keyed by item name; items absent from the map have zero stock. Levels are
// advisory for the stock-check step and never block a workflow.
type StockLevels interface {
	// Levels returns available quantities for the named items.
	Levels(ctx context.Context, itemNames []string) (map[string]int, error)
}
