package queries

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDraftsQueryHandler reads an agency's draft basket from the database.
type ListDraftsQueryHandler struct {
	db *gorm.DB
}

// NewListDraftsQueryHandler creates a handler for basket queries.
// Requires a GORM database connection for query execution.
func NewListDraftsQueryHandler(db *gorm.DB) ListDraftsQueryHandler {
	return ListDraftsQueryHandler{db: db}
}

// Handle executes the basket query.
// Returns the agency's draft lines sorted by product name, plus the grand
// total across all lines.
func (h ListDraftsQueryHandler) Handle(
	ctx context.Context,
	query ListDraftsQuery,
) (ListDraftsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDraftsQueryResponse{}, err
	}

	response := ListDraftsQueryResponse{
		Lines: make([]DraftLineResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			unit_price,
			quantity,
			line_total
		FROM drafts
		WHERE agency_id = ?
		ORDER BY product_name, id
	`, query.AgencyID().Bytes()).Rows()
	if err != nil {
		return ListDraftsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line DraftLineResponse
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&line.ProductName,
			&line.UnitPrice,
			&line.Quantity,
			&line.LineTotal,
		)
		if err != nil {
			return ListDraftsQueryResponse{}, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListDraftsQueryResponse{}, idErr
		}
		line.ID = lineID

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return ListDraftsQueryResponse{}, idErr
		}
		line.ProductID = lineProductID

		response.Lines = append(response.Lines, line)
		response.GrandTotal += line.LineTotal
	}

	if err = rows.Err(); err != nil {
		return ListDraftsQueryResponse{}, err
	}

	return response, nil
}
