// Package ports defines the persistence and integration contracts of the
// order lifecycle core. These interfaces establish boundaries between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/domain/model/kernel"
)

// DraftRepository defines the persistence contract for agency draft line items.
// All reads are scoped to the owning agency: a draft belonging to another
// agency behaves as if it does not exist.
type DraftRepository interface {
	// Add persists a new draft line item.
	Add(ctx context.Context, readyOrder *draft.ReadyOrder) error

	// Update persists changes to an existing draft line item.
	Update(ctx context.Context, readyOrder *draft.ReadyOrder) error

	// Get retrieves a draft by identifier, scoped to the given agency.
	// Returns ObjectNotFoundError when the draft does not exist or belongs
	// to a different agency.
	Get(ctx context.Context, agencyID kernel.UUID, id kernel.UUID) (*draft.ReadyOrder, error)

	// GetMany retrieves the drafts with the given identifiers, scoped to the
	// given agency. Returns ObjectNotFoundError unless every requested draft
	// was found.
	GetMany(ctx context.Context, agencyID kernel.UUID, ids []kernel.UUID) ([]*draft.ReadyOrder, error)

	// GetAll retrieves all drafts of the given agency.
	GetAll(ctx context.Context, agencyID kernel.UUID) ([]*draft.ReadyOrder, error)

	// DeleteMany removes the drafts with the given identifiers, scoped to the
	// given agency. Returns ConcurrencyConflictError when fewer rows than
	// requested were removed, which happens when a concurrent promotion or
	// deletion already consumed some of them.
	DeleteMany(ctx context.Context, agencyID kernel.UUID, ids []kernel.UUID) error
}
