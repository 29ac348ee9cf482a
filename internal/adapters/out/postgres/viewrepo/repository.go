// Package viewrepo persists the materialized delivery-order views produced
// by the aggregator. The table is a write-only projection from the Go side:
// the refresh job replaces it wholesale and reporting tools read it
// directly, so milestone records are stored as jsonb documents in the shape
// the domain structs already have.
package viewrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryOrderViewDTO represents one materialized delivery-order row.
type DeliveryOrderViewDTO struct {
	DeliveryOrderNo string    `gorm:"primaryKey"`
	RequestID       uuid.UUID `gorm:"type:uuid;index"`
	Kind            int       `gorm:"not null"`
	Status          int       `gorm:"not null"`

	SetIDs []uuid.UUID               `gorm:"type:jsonb;serializer:json"`
	Labels []string                  `gorm:"type:jsonb;serializer:json"`
	Items  []services.MergedLineItem `gorm:"type:jsonb;serializer:json"`

	QuotedAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee  decimal.Decimal `gorm:"type:numeric(12,2)"`

	Schedule    *shipment.Schedule    `gorm:"type:jsonb;serializer:json"`
	PackingList *shipment.PackingList `gorm:"type:jsonb;serializer:json"`
	StockCheck  *shipment.StockCheck  `gorm:"type:jsonb;serializer:json"`
	Loading     *shipment.Loading     `gorm:"type:jsonb;serializer:json"`
	Handover    *shipment.Handover    `gorm:"type:jsonb;serializer:json"`

	AllStockAvailable bool      `gorm:"not null"`
	OnRental          bool      `gorm:"not null"`
	RefreshedAt       time.Time `gorm:"not null"`
}

// TableName specifies the database table name for view rows.
func (DeliveryOrderViewDTO) TableName() string {
	return "delivery_order_views"
}

// GormDeliveryOrderViews implements DeliveryOrderViews over the
// delivery_order_views table.
type GormDeliveryOrderViews struct {
	db *gorm.DB
}

// NewGormDeliveryOrderViews creates a database-backed projection store.
func NewGormDeliveryOrderViews(db *gorm.DB) *GormDeliveryOrderViews {
	return &GormDeliveryOrderViews{db: db}
}

// Replace atomically swaps the stored projection for the supplied views.
// Readers never observe a half-written refresh: the delete and the inserts
// share one transaction.
func (g *GormDeliveryOrderViews) Replace(ctx context.Context, views []services.DeliveryOrderView) error {
	refreshedAt := time.Now().UTC()

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM delivery_order_views").Error; err != nil {
			return err
		}
		if len(views) == 0 {
			return nil
		}

		dtos := make([]DeliveryOrderViewDTO, 0, len(views))
		for _, view := range views {
			dtos = append(dtos, fromView(view, refreshedAt))
		}

		return tx.Create(&dtos).Error
	})
}

func fromView(view services.DeliveryOrderView, refreshedAt time.Time) DeliveryOrderViewDTO {
	setIDs := make([]uuid.UUID, 0, len(view.SetIDs))
	for _, id := range view.SetIDs {
		setIDs = append(setIDs, id.Bytes())
	}

	return DeliveryOrderViewDTO{
		DeliveryOrderNo:   view.DeliveryOrderNo,
		RequestID:         view.RequestID.Bytes(),
		Kind:              int(view.Kind),
		Status:            int(view.Status),
		SetIDs:            setIDs,
		Labels:            view.Labels,
		Items:             view.Items,
		QuotedAmount:      view.QuotedAmount,
		DeliveryFee:       view.DeliveryFee,
		Schedule:          view.Schedule,
		PackingList:       view.PackingList,
		StockCheck:        view.StockCheck,
		Loading:           view.Loading,
		Handover:          view.Handover,
		AllStockAvailable: view.AllStockAvailable,
		OnRental:          view.OnRental,
		RefreshedAt:       refreshedAt,
	}
}
