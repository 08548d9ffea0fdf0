package driverrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/driver"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkDelivering raises the driver's delivering flag with a compare-and-set:
// the update applies only while the flag is down. Two dispatchers racing for
// the same driver serialize on this row update and the loser gets a
// ConcurrencyConflictError.
func (r *GormDriverRepository) MarkDelivering(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND delivering = false", id.Bytes()).
		Update("delivering", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.flagConflict(ctx, id)
	}

	return nil
}

// Release drops the driver's delivering flag, returning the driver to the
// free pool.
func (r *GormDriverRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND delivering = true", id.Bytes()).
		Update("delivering", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.flagConflict(ctx, id)
	}

	return nil
}

// GetAllFree retrieves all drivers whose delivering flag is down, sorted by
// name.
func (r *GormDriverRepository) GetAllFree(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("delivering = false").
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// ReleaseOrphaned drops the delivering flag of every driver no in-transit
// order references and reports how many rows were released. The correlated
// subquery keeps the scan and the release in one statement, so a dispatch
// committing between them cannot lose its driver. Used to recover drivers
// left booked by a crash between the flag update and the order dispatch.
func (r *GormDriverRepository) ReleaseOrphaned(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE drivers SET delivering = false
		 WHERE delivering = true
		   AND id NOT IN (SELECT driver_id FROM orders WHERE status = ? AND driver_id IS NOT NULL)`,
		int(order.InTransit),
	)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// flagConflict distinguishes a missing driver from a flag already in the
// target state.
func (r *GormDriverRepository) flagConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}
	return errs.NewConcurrencyConflictError("driver", id.String())
}
