package queries

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFreeDriversQueryHandler reads the free driver pool from the database.
type ListFreeDriversQueryHandler struct {
	db *gorm.DB
}

// NewListFreeDriversQueryHandler creates a handler for free driver queries.
// Requires a GORM database connection for query execution.
func NewListFreeDriversQueryHandler(db *gorm.DB) ListFreeDriversQueryHandler {
	return ListFreeDriversQueryHandler{db: db}
}

// Handle executes the query.
// Returns drivers whose delivering flag is down, sorted by name.
func (h ListFreeDriversQueryHandler) Handle(
	ctx context.Context,
	query ListFreeDriversQuery,
) ([]ListFreeDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]ListFreeDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle
		FROM drivers
		WHERE delivering = false
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListFreeDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.Vehicle,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
