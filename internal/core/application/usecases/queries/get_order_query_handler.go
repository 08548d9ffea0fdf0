package queries

import (
	"context"
	"database/sql"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's detail view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns ObjectNotFoundError when the order does not exist or, for an
// agency-scoped query, belongs to a different agency.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	headerSQL := `
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
			driver_id,
			driver_name,
			driver_phone,
			vehicle
		FROM orders
		WHERE id = ?
	`
	args := []any{query.OrderID().Bytes()}
	if query.AgencyID() != nil {
		headerSQL += " AND agency_id = ?"
		args = append(args, query.AgencyID().Bytes())
	}

	var resp GetOrderQueryResponse
	var id, agencyID uuid.UUID
	var status int
	var driverID uuid.NullUUID
	var driverName, driverPhone, vehicle *string

	row := h.db.WithContext(ctx).Raw(headerSQL, args...).Row()
	err := row.Scan(
		&id,
		&agencyID,
		&resp.AgencyName,
		&resp.OrderedAt,
		&resp.ReserveDate,
		&status,
		&resp.ProductSummary,
		&resp.TotalQuantity,
		&resp.TotalAmount,
		&driverID,
		&driverName,
		&driverPhone,
		&vehicle,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.AgencyID, err = kernel.UUIDFromBytes(agencyID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status)

	if driverID.Valid {
		assignedDriverID, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.Assignment = &AssignmentResponse{
			DriverID:    assignedDriverID,
			DriverName:  stringValue(driverName),
			DriverPhone: stringValue(driverPhone),
			Vehicle:     stringValue(vehicle),
		}
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			unit_price,
			quantity,
			line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name, product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&item.ProductName,
			&item.UnitPrice,
			&item.Quantity,
			&item.LineTotal,
		)
		if err != nil {
			return nil, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = itemProductID

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
