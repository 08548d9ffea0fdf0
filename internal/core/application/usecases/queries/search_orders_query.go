package queries

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
	ErrUnknownSortField = errors.New("unknown sort field")
)

// sortColumns whitelists the sortable fields and maps them to their database
// columns. Sorting is never interpolated from raw request input.
var sortColumns = map[string]string{
	"orderedAt":   "ordered_at",
	"reserveDate": "reserve_date",
	"totalAmount": "total_amount",
	"quantity":    "total_quantity",
	"status":      "status",
	"agencyName":  "agency_name",
}

// DefaultSortField is used when the caller does not pick a sort field.
const DefaultSortField = "orderedAt"

// SearchOrdersFilter carries the optional search criteria. Nil pointer fields
// and empty strings mean "no constraint".
type SearchOrdersFilter struct {
	// AgencyID scopes the search to one agency's orders. The HTTP layer sets
	// it from the authenticated actor for agency users and leaves it nil for
	// head office and logistics.
	AgencyID *kernel.UUID

	Status *order.Status

	OrderedFrom *time.Time
	OrderedTo   *time.Time
	ReserveFrom *time.Time
	ReserveTo   *time.Time

	AmountMin *int64
	AmountMax *int64

	QuantityMin *int
	QuantityMax *int

	// SearchText matches case-insensitively against the product summary, the
	// agency name and the assigned driver name.
	SearchText string

	SortBy   string
	SortDesc bool
}

// SearchOrdersQuery retrieves orders matching a combination of filters.
//
// Example:
//
//	pending := order.PendingApproval
//	query, err := NewSearchOrdersQuery(SearchOrdersFilter{
//	    Status:   &pending,
//	    SortBy:   "reserveDate",
//	})
//	if err != nil {
//	    return err
//	}
//
//	results, err := NewSearchOrdersQueryHandler(db).Handle(ctx, query)
type SearchOrdersQuery struct {
	filter SearchOrdersFilter

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates an order search query.
// Validates the status filter and the sort field against the whitelist; an
// empty SortBy falls back to DefaultSortField.
func NewSearchOrdersQuery(filter SearchOrdersFilter) (SearchOrdersQuery, error) {
	if filter.SortBy == "" {
		filter.SortBy = DefaultSortField
		filter.SortDesc = true
	}
	if _, ok := sortColumns[filter.SortBy]; !ok {
		return SearchOrdersQuery{}, fmt.Errorf("%w: %s", ErrUnknownSortField, filter.SortBy)
	}

	if filter.AgencyID != nil {
		if err := filter.AgencyID.Validate(); err != nil {
			return SearchOrdersQuery{}, err
		}
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return SearchOrdersQuery{}, err
		}
	}
	if filter.AmountMin != nil && filter.AmountMax != nil && *filter.AmountMin > *filter.AmountMax {
		return SearchOrdersQuery{}, errs.NewValueIsInvalidError("amount range")
	}
	if filter.QuantityMin != nil && filter.QuantityMax != nil && *filter.QuantityMin > *filter.QuantityMax {
		return SearchOrdersQuery{}, errs.NewValueIsInvalidError("quantity range")
	}

	return SearchOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Filter returns the search criteria.
func (q SearchOrdersQuery) Filter() SearchOrdersFilter {
	return q.filter
}

// SortColumn returns the whitelisted database column to sort by.
func (q SearchOrdersQuery) SortColumn() string {
	return sortColumns[q.filter.SortBy]
}

// SearchOrdersQueryResponse represents one order row in list views.
// DriverName is empty until the order is dispatched.
type SearchOrdersQueryResponse struct {
	ID             kernel.UUID
	AgencyID       kernel.UUID
	AgencyName     string
	OrderedAt      time.Time
	ReserveDate    time.Time
	Status         order.Status
	ProductSummary string
	TotalQuantity  int
	TotalAmount    int64
	DriverName     string
}
