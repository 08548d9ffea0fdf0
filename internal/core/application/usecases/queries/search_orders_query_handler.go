package queries

import (
	"context"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchOrdersQueryHandler executes filtered order searches against the
// database. The WHERE clause is assembled from the whitelisted filter fields
// with positional parameters; only the sort column is interpolated, and it
// comes from the whitelist, never from request input.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order searches.
// Requires a GORM database connection for query execution.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the search.
// Results are sorted by the requested column with an ascending order-id
// tie-break so pagination stays stable for rows with equal sort keys.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			id,
			agency_id,
			agency_name,
			ordered_at,
			reserve_date,
			status,
			product_summary,
			total_quantity,
			total_amount,
			COALESCE(driver_name, '')
		FROM orders
		WHERE 1=1
	`)

	args := make([]any, 0)

	if filter.AgencyID != nil {
		sql.WriteString(" AND agency_id = ?")
		args = append(args, filter.AgencyID.Bytes())
	}
	if filter.Status != nil {
		sql.WriteString(" AND status = ?")
		args = append(args, int(*filter.Status))
	}
	if filter.OrderedFrom != nil {
		sql.WriteString(" AND ordered_at >= ?")
		args = append(args, *filter.OrderedFrom)
	}
	if filter.OrderedTo != nil {
		sql.WriteString(" AND ordered_at <= ?")
		args = append(args, *filter.OrderedTo)
	}
	if filter.ReserveFrom != nil {
		sql.WriteString(" AND reserve_date >= ?")
		args = append(args, *filter.ReserveFrom)
	}
	if filter.ReserveTo != nil {
		sql.WriteString(" AND reserve_date <= ?")
		args = append(args, *filter.ReserveTo)
	}
	if filter.AmountMin != nil {
		sql.WriteString(" AND total_amount >= ?")
		args = append(args, *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		sql.WriteString(" AND total_amount <= ?")
		args = append(args, *filter.AmountMax)
	}
	if filter.QuantityMin != nil {
		sql.WriteString(" AND total_quantity >= ?")
		args = append(args, *filter.QuantityMin)
	}
	if filter.QuantityMax != nil {
		sql.WriteString(" AND total_quantity <= ?")
		args = append(args, *filter.QuantityMax)
	}
	if filter.SearchText != "" {
		sql.WriteString(" AND (product_summary ILIKE ? OR agency_name ILIKE ? OR COALESCE(driver_name, '') ILIKE ?)")
		pattern := "%" + filter.SearchText + "%"
		args = append(args, pattern, pattern, pattern)
	}

	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	sql.WriteString(" ORDER BY " + query.SortColumn() + " " + direction + ", id ASC")

	orders := make([]SearchOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp SearchOrdersQueryResponse
		var id, agencyID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&agencyID,
			&resp.AgencyName,
			&resp.OrderedAt,
			&resp.ReserveDate,
			&status,
			&resp.ProductSummary,
			&resp.TotalQuantity,
			&resp.TotalAmount,
			&resp.DriverName,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orderAgencyID, idErr := kernel.UUIDFromBytes(agencyID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.AgencyID = orderAgencyID

		resp.Status = order.Status(status)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
