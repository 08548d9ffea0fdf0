package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and, once dispatched, its
// delivery assignment snapshot.
type GetOrderQuery struct {
	orderID kernel.UUID
	// agencyID scopes the read for agency actors; nil means unrestricted.
	agencyID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
// Pass a non-nil agencyID to scope the read to that agency; an order of
// another agency is then reported as not found.
func NewGetOrderQuery(orderID kernel.UUID, agencyID *kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if agencyID != nil {
		if err := agencyID.Validate(); err != nil {
			return GetOrderQuery{}, err
		}
	}

	return GetOrderQuery{
		orderID:  orderID,
		agencyID: agencyID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AgencyID returns the tenant scope, or nil for unrestricted actors.
func (q GetOrderQuery) AgencyID() *kernel.UUID {
	return q.agencyID
}

// OrderItemResponse represents one frozen line item of an order.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   int64
	Quantity    int
	LineTotal   int64
}

// AssignmentResponse represents the driver snapshot taken at dispatch.
type AssignmentResponse struct {
	DriverID    kernel.UUID
	DriverName  string
	DriverPhone string
	Vehicle     string
}

// GetOrderQueryResponse represents the full order detail view.
// Assignment is nil while the order has not been dispatched.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	AgencyID       kernel.UUID
	AgencyName     string
	OrderedAt      time.Time
	ReserveDate    time.Time
	Status         order.Status
	ProductSummary string
	TotalQuantity  int
	TotalAmount    int64
	Items          []OrderItemResponse
	Assignment     *AssignmentResponse
}
