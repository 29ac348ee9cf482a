package returnrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReturnRepository implements ReturnRepository using GORM. Updates carry
// the same version-column guard as the shipment repository.
type GormReturnRepository struct {
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

// NewGormReturnRepository creates a new GORM return repository.
func NewGormReturnRepository(db *gorm.DB, tracker changeTracker) *GormReturnRepository {
	return &GormReturnRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new return order to the database at version 1.
func (r *GormReturnRepository) Add(ctx context.Context, aggregate *returns.ReturnOrder) error {
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

// Update saves an existing return order. The order must have been loaded or
// added through this unit of work; concurrent modification surfaces as a
// version conflict.
func (r *GormReturnRepository) Update(ctx context.Context, aggregate *returns.ReturnOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loaded, ok := r.tracker.LoadedVersion(aggregate.ID())
	if !ok {
		return errs.NewVersionIsInvalidErrorWithCause("return order version",
			fmt.Errorf("order %s was not loaded in this unit of work", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	dto.Version = loaded + 1
	result := r.db.WithContext(ctx).
		Model(&ReturnOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("return order version",
			fmt.Errorf("order %s was modified concurrently", aggregate.ID()))
	}

	r.tracker.RecordLoadedVersion(aggregate.ID(), dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a return order by ID.
func (r *GormReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.ReturnOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("return order", id.String())
		}
		return nil, err
	}

	r.tracker.RecordLoadedVersion(id, dto.Version)
	return toDomain(dto)
}

// GetAllActive retrieves every return order that has not reached the
// terminal Completed status.
func (r *GormReturnRepository) GetAllActive(ctx context.Context) ([]*returns.ReturnOrder, error) {
	var dtos []ReturnOrderDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "status != ?", returns.Completed).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*returns.ReturnOrder, 0, len(dtos))
	for _, dto := range dtos {
		order, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}

		orderID, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		r.tracker.RecordLoadedVersion(orderID, dto.Version)
		orders = append(orders, order)
	}

	return orders, nil
}
