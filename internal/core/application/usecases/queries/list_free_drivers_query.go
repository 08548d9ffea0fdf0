package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrListFreeDriversQueryIsNotConstructed = errors.New(
	"ListFreeDriversQuery must be created via NewListFreeDriversQuery constructor",
)

// ListFreeDriversQuery retrieves all drivers available for dispatch.
// This is a parameterless query; a driver is free while its delivering flag
// is down.
type ListFreeDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewListFreeDriversQuery creates a query for the free driver pool.
func NewListFreeDriversQuery() ListFreeDriversQuery {
	return ListFreeDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListFreeDriversQuery) Validate() error {
	return q.guard.Validate(ErrListFreeDriversQueryIsNotConstructed)
}

// ListFreeDriversQueryResponse represents one free driver row.
type ListFreeDriversQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Phone   string
	Vehicle string
}
