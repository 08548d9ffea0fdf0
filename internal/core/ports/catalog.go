package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
)

// Product is a catalog read model carrying the fields the draft basket
// snapshots at add time.
type Product struct {
	ID        kernel.UUID
	Name      string
	UnitPrice int64
}

// Agency is a directory read model carrying the fields the order snapshots
// at promotion time.
type Agency struct {
	ID   kernel.UUID
	Name string
}

// CatalogReader provides read access to the product catalog and the agency
// directory. The lifecycle core never mutates either; prices and names are
// copied into drafts and orders so later catalog edits cannot rewrite
// history.
type CatalogReader interface {
	// GetProduct retrieves a product by identifier.
	// Returns ObjectNotFoundError when no such product exists.
	GetProduct(ctx context.Context, id kernel.UUID) (Product, error)

	// GetAgency retrieves an agency by identifier.
	// Returns ObjectNotFoundError when no such agency exists.
	GetAgency(ctx context.Context, id kernel.UUID) (Agency, error)
}
