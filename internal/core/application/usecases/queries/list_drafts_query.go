// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain aggregates and read denormalized rows
// straight from the database for optimal read performance.
package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrListDraftsQueryIsNotConstructed = errors.New(
	"ListDraftsQuery must be created via NewListDraftsQuery constructor",
)

// ListDraftsQuery retrieves the draft basket of one agency.
//
// Example:
//
//	query, err := NewListDraftsQuery(agencyID)
//	if err != nil {
//	    return err
//	}
//
//	basket, err := NewListDraftsQueryHandler(db).Handle(ctx, query)
//	fmt.Printf("%d lines, %d total\n", len(basket.Lines), basket.GrandTotal)
type ListDraftsQuery struct {
	agencyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDraftsQuery creates a query for the given agency's basket.
func NewListDraftsQuery(agencyID kernel.UUID) (ListDraftsQuery, error) {
	if err := agencyID.Validate(); err != nil {
		return ListDraftsQuery{}, err
	}

	return ListDraftsQuery{
		agencyID: agencyID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDraftsQuery) Validate() error {
	return q.guard.Validate(ErrListDraftsQueryIsNotConstructed)
}

// AgencyID returns the agency whose basket is listed.
func (q ListDraftsQuery) AgencyID() kernel.UUID {
	return q.agencyID
}

// DraftLineResponse represents one basket line with its frozen snapshots.
type DraftLineResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   int64
	Quantity    int
	LineTotal   int64
}

// ListDraftsQueryResponse represents the agency's whole basket: the lines
// plus the grand total an eventual promotion would carry.
type ListDraftsQueryResponse struct {
	Lines      []DraftLineResponse
	GrandTotal int64
}
