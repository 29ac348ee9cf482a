// Package shipmentrepo provides data transfer objects and mapping functions
// for fulfillment-set persistence. This package implements the repository
// pattern for the shipment domain aggregate, handling the conversion between
// domain entities and database representations.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FulfillmentSetDTO represents the database structure for persisting
// fulfillment-set aggregates. The manifest and milestone records are stored
// as jsonb documents; scalar workflow state stays in indexed columns so the
// sequential gate and the aggregator can query by request and by
// delivery-order membership.
type FulfillmentSetDTO struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	RequestID       uuid.UUID        `gorm:"type:uuid;index"`
	Ordinal         int              `gorm:"not null"`
	Label           string           `gorm:""`
	Kind            int              `gorm:"not null"`
	Status          int              `gorm:"index"`
	Items           []LineItemDTO    `gorm:"type:jsonb;serializer:json"`
	QuotedAmount    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryOrderNo *string          `gorm:"index"`
	PackingList     *PackingListDTO  `gorm:"type:jsonb;serializer:json"`
	StockCheck      *StockCheckDTO   `gorm:"type:jsonb;serializer:json"`
	Schedule        *ScheduleDTO     `gorm:"type:jsonb;serializer:json"`
	Loading         *LoadingDTO      `gorm:"type:jsonb;serializer:json"`
	Handover        *HandoverDTO     `gorm:"type:jsonb;serializer:json"`
	OnRental        bool             `gorm:"not null"`
	Version         int              `gorm:"not null"`
}

// TableName specifies the database table name for fulfillment-set entities.
// Overrides GORM's default naming convention to use "fulfillment_sets".
func (FulfillmentSetDTO) TableName() string {
	return "fulfillment_sets"
}

// LineItemDTO is one manifest entry within the jsonb items document.
type LineItemDTO struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	AvailableStock int    `json:"available_stock"`
}

// PackingListDTO is the jsonb shape of the packing-list milestone.
type PackingListDTO struct {
	Number   string    `json:"number"`
	IssuedBy string    `json:"issued_by"`
	IssuedAt time.Time `json:"issued_at"`
}

// StockCheckDTO is the jsonb shape of the stock-check milestone.
type StockCheckDTO struct {
	CheckedBy    string    `json:"checked_by"`
	CheckedAt    time.Time `json:"checked_at"`
	Notes        string    `json:"notes"`
	AllAvailable bool      `json:"all_available"`
}

// ScheduleDTO is the jsonb shape of the confirmed delivery schedule.
type ScheduleDTO struct {
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"time_slot"`
}

// LoadingDTO is the jsonb shape of the pack-and-load milestone.
type LoadingDTO struct {
	StartedBy    string     `json:"started_by"`
	StartedAt    time.Time  `json:"started_at"`
	Driver       string     `json:"driver"`
	Vehicle      string     `json:"vehicle"`
	Photos       []string   `json:"photos"`
	LoadedAt     *time.Time `json:"loaded_at"`
	DispatchedAt *time.Time `json:"dispatched_at"`
}

// HandoverDTO is the jsonb shape of the completed-handover milestone.
type HandoverDTO struct {
	Recipient    string    `json:"recipient"`
	SignedBy     string    `json:"signed_by"`
	SignatureRef string    `json:"signature_ref"`
	VerifiedAt   time.Time `json:"verified_at"`
}

// fromDomain converts a fulfillment-set aggregate to its database
// representation. Version is assigned by the repository, not here.
func fromDomain(set *shipment.FulfillmentSet) FulfillmentSetDTO {
	items := make([]LineItemDTO, 0, len(set.Items()))
	for _, item := range set.Items() {
		items = append(items, LineItemDTO{
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			AvailableStock: item.AvailableStock(),
		})
	}

	dto := FulfillmentSetDTO{
		ID:              set.ID().Bytes(),
		RequestID:       set.RequestID().Bytes(),
		Ordinal:         set.Ordinal(),
		Label:           set.Label(),
		Kind:            int(set.Kind()),
		Status:          int(set.Status()),
		Items:           items,
		QuotedAmount:    set.QuotedAmount(),
		DeliveryFee:     set.DeliveryFee(),
		DeliveryOrderNo: set.DeliveryOrderNo(),
		OnRental:        set.OnRental(),
	}

	if pl := set.PackingList(); pl != nil {
		dto.PackingList = &PackingListDTO{Number: pl.Number, IssuedBy: pl.IssuedBy, IssuedAt: pl.IssuedAt}
	}
	if sc := set.StockCheck(); sc != nil {
		dto.StockCheck = &StockCheckDTO{
			CheckedBy:    sc.CheckedBy,
			CheckedAt:    sc.CheckedAt,
			Notes:        sc.Notes,
			AllAvailable: sc.AllAvailable,
		}
	}
	if sch := set.Schedule(); sch != nil {
		dto.Schedule = &ScheduleDTO{Date: sch.Date, TimeSlot: sch.TimeSlot}
	}
	if ld := set.Loading(); ld != nil {
		dto.Loading = &LoadingDTO{
			StartedBy:    ld.StartedBy,
			StartedAt:    ld.StartedAt,
			Driver:       ld.Driver,
			Vehicle:      ld.Vehicle,
			Photos:       ld.Photos,
			LoadedAt:     ld.LoadedAt,
			DispatchedAt: ld.DispatchedAt,
		}
	}
	if ho := set.Handover(); ho != nil {
		dto.Handover = &HandoverDTO{
			Recipient:    ho.Recipient,
			SignedBy:     ho.SignedBy,
			SignatureRef: ho.SignatureRef,
			VerifiedAt:   ho.VerifiedAt,
		}
	}

	return dto
}

// toDomain converts a database DTO to a fulfillment-set aggregate.
// Reconstructs the complete aggregate including every recorded milestone
// using RestoreFulfillmentSet.
func toDomain(dto FulfillmentSetDTO) (*shipment.FulfillmentSet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	items := make([]shipment.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := shipment.RestoreLineItem(itemDTO.Name, itemDTO.Quantity, itemDTO.AvailableStock)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var packingList *shipment.PackingList
	if dto.PackingList != nil {
		packingList = &shipment.PackingList{
			Number:   dto.PackingList.Number,
			IssuedBy: dto.PackingList.IssuedBy,
			IssuedAt: dto.PackingList.IssuedAt,
		}
	}
	var stockCheck *shipment.StockCheck
	if dto.StockCheck != nil {
		stockCheck = &shipment.StockCheck{
			CheckedBy:    dto.StockCheck.CheckedBy,
			CheckedAt:    dto.StockCheck.CheckedAt,
			Notes:        dto.StockCheck.Notes,
			AllAvailable: dto.StockCheck.AllAvailable,
		}
	}
	var schedule *shipment.Schedule
	if dto.Schedule != nil {
		schedule = &shipment.Schedule{Date: dto.Schedule.Date, TimeSlot: dto.Schedule.TimeSlot}
	}
	var loading *shipment.Loading
	if dto.Loading != nil {
		loading = &shipment.Loading{
			StartedBy:    dto.Loading.StartedBy,
			StartedAt:    dto.Loading.StartedAt,
			Driver:       dto.Loading.Driver,
			Vehicle:      dto.Loading.Vehicle,
			Photos:       dto.Loading.Photos,
			LoadedAt:     dto.Loading.LoadedAt,
			DispatchedAt: dto.Loading.DispatchedAt,
		}
	}
	var handover *shipment.Handover
	if dto.Handover != nil {
		handover = &shipment.Handover{
			Recipient:    dto.Handover.Recipient,
			SignedBy:     dto.Handover.SignedBy,
			SignatureRef: dto.Handover.SignatureRef,
			VerifiedAt:   dto.Handover.VerifiedAt,
		}
	}

	return shipment.RestoreFulfillmentSet(
		id, requestID,
		dto.Ordinal,
		dto.Label,
		shipment.Kind(dto.Kind),
		items,
		shipment.Status(dto.Status),
		dto.QuotedAmount, dto.DeliveryFee,
		dto.DeliveryOrderNo,
		packingList,
		stockCheck,
		schedule,
		loading,
		handover,
		dto.OnRental,
	)
}
