package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its items.
	Add(ctx context.Context, aggregate *order.AgencyOrder) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and delivery assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.AgencyOrder, error)

	// UpdateWithStatus persists changes to an existing order aggregate with a
	// compare-and-set guard on the status column: the update only applies if
	// the stored status still equals expectedStatus. Returns
	// ConcurrencyConflictError when the guard fails, meaning another actor
	// advanced the order first.
	UpdateWithStatus(ctx context.Context, aggregate *order.AgencyOrder, expectedStatus order.Status) error

	// Delete removes the orders with the given identifiers. Only orders whose
	// status has not reached InTransit are eligible. Returns
	// ConcurrencyConflictError when fewer rows than requested were removed.
	Delete(ctx context.Context, ids []kernel.UUID) error
}
