package ports

import (
	"context"

	"supplychain/internal/core/domain/model/driver"
	"supplychain/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for delivery drivers.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// MarkDelivering flips the driver's delivering flag to true with a
	// compare-and-set guard: the update only applies if the flag is still
	// false. Returns ConcurrencyConflictError when the driver was already
	// booked, which makes the flag an exclusivity lock against assigning one
	// driver to two concurrent deliveries.
	MarkDelivering(ctx context.Context, id kernel.UUID) error

	// Release flips the driver's delivering flag back to false.
	Release(ctx context.Context, id kernel.UUID) error

	// GetAllFree retrieves all drivers whose delivering flag is false.
	GetAllFree(ctx context.Context) ([]*driver.Driver, error)

	// ReleaseOrphaned releases every delivering driver no in-transit order
	// references and returns how many rows were released. The scan and the
	// release run as one statement so a dispatch committing mid-sweep cannot
	// have its freshly booked driver freed. Used by the reconciliation job to
	// recover drivers orphaned by a crash between the booking and the order
	// status update.
	ReleaseOrphaned(ctx context.Context) (int64, error)
}
