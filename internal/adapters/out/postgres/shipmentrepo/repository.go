package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
// Updates are guarded by a version column: the write only lands when the row
// still carries the version observed at load time, so concurrent commands on
// the same set surface as a version conflict instead of a lost update.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker defines the interface for tracking aggregates and the
// versions they were loaded with.
type changeTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
	RecordLoadedVersion(id kernel.UUID, version int)
	LoadedVersion(id kernel.UUID) (int, bool)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker changeTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fulfillment set to the database at version 1.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.FulfillmentSet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.RecordLoadedVersion(aggregate.ID(), dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing fulfillment set. The set must have been loaded or
// added through this unit of work; the write is rejected with a version
// conflict when another transaction has modified the row since.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.FulfillmentSet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loaded, ok := r.tracker.LoadedVersion(aggregate.ID())
	if !ok {
		return errs.NewVersionIsInvalidErrorWithCause("fulfillment set version",
			fmt.Errorf("set %s was not loaded in this unit of work", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	dto.Version = loaded + 1
	result := r.db.WithContext(ctx).
		Model(&FulfillmentSetDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("fulfillment set version",
			fmt.Errorf("set %s was modified concurrently", aggregate.ID()))
	}

	r.tracker.RecordLoadedVersion(aggregate.ID(), dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a fulfillment set by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.FulfillmentSet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FulfillmentSetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fulfillment set", id.String())
		}
		return nil, err
	}

	r.tracker.RecordLoadedVersion(id, dto.Version)
	return toDomain(dto)
}

// GetByRequest retrieves every set of a customer request in ordinal order.
func (r *GormShipmentRepository) GetByRequest(
	ctx context.Context,
	requestID kernel.UUID,
) ([]*shipment.FulfillmentSet, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []FulfillmentSetDTO
	err := r.db.WithContext(ctx).
		Order("ordinal").
		Find(&dtos, "request_id = ?", requestID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetByDeliveryOrder retrieves every set carrying the delivery-order number,
// in ordinal order within the request.
func (r *GormShipmentRepository) GetByDeliveryOrder(
	ctx context.Context,
	doNumber string,
) ([]*shipment.FulfillmentSet, error) {
	if doNumber == "" {
		return nil, errs.NewValueIsRequiredError("delivery order number")
	}

	var dtos []FulfillmentSetDTO
	err := r.db.WithContext(ctx).
		Order("request_id, ordinal").
		Find(&dtos, "delivery_order_no = ?", doNumber).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllWithDeliveryOrder retrieves all sets that belong to a delivery
// order, grouped by delivery-order number. Feeds the periodic view refresh.
func (r *GormShipmentRepository) GetAllWithDeliveryOrder(ctx context.Context) ([]*shipment.FulfillmentSet, error) {
	var dtos []FulfillmentSetDTO
	err := r.db.WithContext(ctx).
		Order("delivery_order_no, request_id, ordinal").
		Find(&dtos, "delivery_order_no IS NOT NULL").Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormShipmentRepository) toDomainAll(dtos []FulfillmentSetDTO) ([]*shipment.FulfillmentSet, error) {
	sets := make([]*shipment.FulfillmentSet, 0, len(dtos))
	for _, dto := range dtos {
		set, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		setID, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		r.tracker.RecordLoadedVersion(setID, dto.Version)
		sets = append(sets, set)
	}

	return sets, nil
}
