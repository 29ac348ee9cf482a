// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across the shipment and return repositories
//   - Aggregate tracking for post-commit processing
//   - Loaded-version bookkeeping backing the optimistic concurrency guard
//   - Repository factory pattern for consistent database connections
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	set, err := uow.ShipmentRepository().Get(ctx, id)
//	if err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	// mutate the aggregate, then:
//	if err := uow.ShipmentRepository().Update(ctx, set); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances. Updates on aggregates that were
// modified by another transaction since loading fail with a version
// conflict, so keep transactions short to reduce contention.
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/returnrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Factory ensures each business operation gets a fresh unit of
// work instance with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection will be used for all created
// unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state, aggregate
// tracking, and loaded-version bookkeeping.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
		loadedVersions:    make(map[kernel.UUID]int),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities.
//
// Besides transaction control it records, per aggregate, the version the row
// carried when it was loaded; the repositories use that to detect lost
// updates on write.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
	loadedVersions    map[kernel.UUID]int
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction
// context. Multiple calls to Begin on the same instance are safe and will
// not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ShipmentRepository provides access to fulfillment-set persistence within
// the unit of work. Repository operations execute within the current
// transaction if one is active, otherwise against the main connection.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return shipmentrepo.NewGormShipmentRepository(db, uow)
}

// ReturnRepository provides access to return-order persistence within the
// unit of work. Repository operations execute within the current transaction
// if one is active, otherwise against the main connection.
func (uow *GormUnitOfWork) ReturnRepository() ports.ReturnRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return returnrepo.NewGormReturnRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repositories when aggregates are added or updated;
// tracked aggregates are available for post-commit processing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// RecordLoadedVersion remembers the version an aggregate row carried when it
// was read, keyed by aggregate identifier.
func (uow *GormUnitOfWork) RecordLoadedVersion(id kernel.UUID, version int) {
	uow.loadedVersions[id] = version
}

// LoadedVersion returns the recorded version for an aggregate, and whether
// the aggregate was read through this unit of work at all.
func (uow *GormUnitOfWork) LoadedVersion(id kernel.UUID) (int, bool) {
	version, ok := uow.loadedVersions[id]
	return version, ok
}
