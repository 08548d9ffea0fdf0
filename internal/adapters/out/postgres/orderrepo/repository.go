package orderrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.AgencyOrder) error {
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

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.AgencyOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateWithStatus saves the mutable order header fields, guarded by a
// compare-and-set on the status column. Items are frozen at promotion and
// never updated. Zero affected rows means another transaction advanced the
// order first, reported as ConcurrencyConflictError.
func (r *GormOrderRepository) UpdateWithStatus(
	ctx context.Context,
	aggregate *order.AgencyOrder,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]any{
			"status":       dto.Status,
			"reserve_date": dto.ReserveDate,
			"driver_id":    dto.DriverID,
			"driver_name":  dto.DriverName,
			"driver_phone": dto.DriverPhone,
			"vehicle":      dto.Vehicle,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the given orders and their items. The guard on the status
// column keeps dispatched orders untouchable: if any requested order is
// missing or already past ReadyToShip, nothing is deleted and a
// ConcurrencyConflictError is returned.
func (r *GormOrderRepository) Delete(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("ids")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", rawIDs).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id IN ? AND status < ?", rawIDs, int(order.InTransit)).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected != int64(len(ids)) {
		return errs.NewConcurrencyConflictError("orders", len(ids))
	}

	return nil
}
