// Package stocklevels reads warehouse availability from the stock_levels
// table. The table is maintained by the inventory side of the business; this
// adapter only ever reads it, as an advisory input to the stock-check step.
package stocklevels

import (
	"context"

	"gorm.io/gorm"
)

// StockLevelDTO represents one item's availability row.
type StockLevelDTO struct {
	ItemName  string `gorm:"primaryKey"`
	Available int    `gorm:"not null"`
}

// TableName specifies the database table name for availability rows.
func (StockLevelDTO) TableName() string {
	return "stock_levels"
}

// GormStockLevels implements StockLevels over the stock_levels table.
type GormStockLevels struct {
	db *gorm.DB
}

// NewGormStockLevels creates a database-backed stock oracle.
func NewGormStockLevels(db *gorm.DB) *GormStockLevels {
	return &GormStockLevels{db: db}
}

// Levels returns available quantities for the named items. Items without a
// row are absent from the map, which callers treat as zero stock.
func (g *GormStockLevels) Levels(ctx context.Context, itemNames []string) (map[string]int, error) {
	levels := make(map[string]int, len(itemNames))
	if len(itemNames) == 0 {
		return levels, nil
	}

	var dtos []StockLevelDTO
	err := g.db.WithContext(ctx).
		Find(&dtos, "item_name IN ?", itemNames).Error
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		levels[dto.ItemName] = dto.Available
	}

	return levels, nil
}
