// Package returnrepo provides data transfer objects and mapping functions
// for return-order persistence. Return lines, evidence photos and workflow
// records are stored as jsonb documents; scalar state stays in columns so
// active returns can be listed without unpacking documents.
package returnrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"

	"github.com/google/uuid"
)

// ReturnOrderDTO represents the database structure for persisting
// return-order aggregates.
type ReturnOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName    string    `gorm:"not null"`
	CustomerContact string    `gorm:"not null"`
	OriginOrderRef  string    `gorm:""`
	ReturnType      int       `gorm:"not null"`
	Method          int       `gorm:"not null"`
	Status          int       `gorm:"index"`

	Items []ReturnItemDTO `gorm:"type:jsonb;serializer:json"`

	GrnNumber            *string `gorm:""`
	ConditionFormNumber  *string `gorm:""`
	ConditionFormSkipped bool    `gorm:"not null"`

	Pickup     *PickupScheduleDTO   `gorm:"type:jsonb;serializer:json"`
	Driver     *DriverAssignmentDTO `gorm:"type:jsonb;serializer:json"`
	Inspection *InspectionDTO       `gorm:"type:jsonb;serializer:json"`
	Dispute    *DisputeDTO          `gorm:"type:jsonb;serializer:json"`

	OriginPhotos    []string `gorm:"type:jsonb;serializer:json"`
	WarehousePhotos []string `gorm:"type:jsonb;serializer:json"`

	ReceivedAt  *time.Time
	NotifiedAt  *time.Time
	CompletedAt *time.Time

	InventoryUpdated bool `gorm:"not null"`
	StatementUpdated bool `gorm:"not null"`
	CustomerNotified bool `gorm:"not null"`

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for return-order entities.
func (ReturnOrderDTO) TableName() string {
	return "return_orders"
}

// ReturnItemDTO is one return line within the jsonb items document.
type ReturnItemDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Quantity         int       `json:"quantity"`
	ReturnedQuantity int       `json:"returned_quantity"`
	Condition        int       `json:"condition"`
	Notes            string    `json:"notes"`
}

// PickupScheduleDTO is the jsonb shape of the courier collection window.
type PickupScheduleDTO struct {
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"time_slot"`
}

// DriverAssignmentDTO is the jsonb shape of the confirmed pickup driver.
type DriverAssignmentDTO struct {
	Name        string    `json:"name"`
	Contact     string    `json:"contact"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// InspectionDTO is the jsonb shape of the inspection record.
type InspectionDTO struct {
	CompletedAt      time.Time `json:"completed_at"`
	Notes            string    `json:"notes"`
	HasExternalGoods bool      `json:"has_external_goods"`
}

// DisputeDTO is the jsonb shape of a raised customer dispute.
type DisputeDTO struct {
	Reason   string    `json:"reason"`
	RaisedAt time.Time `json:"raised_at"`
}

// fromDomain converts a return-order aggregate to its database
// representation. Version is assigned by the repository, not here.
func fromDomain(order *returns.ReturnOrder) ReturnOrderDTO {
	items := make([]ReturnItemDTO, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, ReturnItemDTO{
			ID:               item.ID().Bytes(),
			Name:             item.Name(),
			Category:         item.Category(),
			Quantity:         item.Quantity(),
			ReturnedQuantity: item.ReturnedQuantity(),
			Condition:        int(item.Condition()),
			Notes:            item.Notes(),
		})
	}

	dto := ReturnOrderDTO{
		ID:                   order.ID().Bytes(),
		CustomerName:         order.Customer().Name,
		CustomerContact:      order.Customer().Contact,
		OriginOrderRef:       order.OriginOrderRef(),
		ReturnType:           int(order.ReturnType()),
		Method:               int(order.CollectionMethod()),
		Status:               int(order.Status()),
		Items:                items,
		GrnNumber:            order.GoodsReceiptNumber(),
		ConditionFormNumber:  order.ConditionFormNumber(),
		ConditionFormSkipped: order.ConditionFormSkipped(),
		OriginPhotos:         order.OriginPhotos(),
		WarehousePhotos:      order.WarehousePhotos(),
		ReceivedAt:           order.ReceivedAt(),
		NotifiedAt:           order.NotifiedAt(),
		CompletedAt:          order.CompletedAt(),
		InventoryUpdated:     order.InventoryUpdated(),
		StatementUpdated:     order.StatementUpdated(),
		CustomerNotified:     order.CustomerNotified(),
	}

	if pickup := order.Pickup(); pickup != nil {
		dto.Pickup = &PickupScheduleDTO{Date: pickup.Date, TimeSlot: pickup.TimeSlot}
	}
	if driver := order.Driver(); driver != nil {
		dto.Driver = &DriverAssignmentDTO{
			Name:        driver.Name,
			Contact:     driver.Contact,
			ConfirmedAt: driver.ConfirmedAt,
		}
	}
	if inspection := order.Inspection(); inspection != nil {
		dto.Inspection = &InspectionDTO{
			CompletedAt:      inspection.CompletedAt,
			Notes:            inspection.Notes,
			HasExternalGoods: inspection.HasExternalGoods,
		}
	}
	if dispute := order.Dispute(); dispute != nil {
		dto.Dispute = &DisputeDTO{Reason: dispute.Reason, RaisedAt: dispute.RaisedAt}
	}

	return dto
}

// toDomain converts a database DTO to a return-order aggregate using
// RestoreReturnOrder.
func toDomain(dto ReturnOrderDTO) (*returns.ReturnOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]returns.ReturnItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, idErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := returns.RestoreReturnItem(
			itemID,
			itemDTO.Name, itemDTO.Category,
			itemDTO.Quantity, itemDTO.ReturnedQuantity,
			returns.Condition(itemDTO.Condition),
			itemDTO.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var pickup *returns.PickupSchedule
	if dto.Pickup != nil {
		pickup = &returns.PickupSchedule{Date: dto.Pickup.Date, TimeSlot: dto.Pickup.TimeSlot}
	}
	var driver *returns.DriverAssignment
	if dto.Driver != nil {
		driver = &returns.DriverAssignment{
			Name:        dto.Driver.Name,
			Contact:     dto.Driver.Contact,
			ConfirmedAt: dto.Driver.ConfirmedAt,
		}
	}
	var inspection *returns.Inspection
	if dto.Inspection != nil {
		inspection = &returns.Inspection{
			CompletedAt:      dto.Inspection.CompletedAt,
			Notes:            dto.Inspection.Notes,
			HasExternalGoods: dto.Inspection.HasExternalGoods,
		}
	}
	var dispute *returns.Dispute
	if dto.Dispute != nil {
		dispute = &returns.Dispute{Reason: dto.Dispute.Reason, RaisedAt: dto.Dispute.RaisedAt}
	}

	return returns.RestoreReturnOrder(
		id,
		returns.Customer{Name: dto.CustomerName, Contact: dto.CustomerContact},
		dto.OriginOrderRef,
		returns.ReturnType(dto.ReturnType),
		returns.CollectionMethod(dto.Method),
		items,
		returns.Status(dto.Status),
		dto.GrnNumber, dto.ConditionFormNumber,
		dto.ConditionFormSkipped,
		pickup,
		driver,
		inspection,
		dispute,
		dto.OriginPhotos, dto.WarehousePhotos,
		dto.ReceivedAt, dto.NotifiedAt, dto.CompletedAt,
		dto.InventoryUpdated, dto.StatementUpdated, dto.CustomerNotified,
	)
}
