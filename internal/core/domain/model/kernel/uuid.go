package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies every entity in the system: drafts, orders, drivers,
// products, agencies. It wraps github.com/google/uuid so the domain can rely
// on a constructed, non-nil identifier; the zero value fails Validate and is
// rejected by every aggregate constructor.
//
// UUID is immutable and safe to copy and compare.
//
// Example usage:
//
//	orderID := kernel.NewUUID()
//
//	agencyID, err := kernel.UUIDFromString(tokenClaims.TenantID)
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form. Used at the API boundary
// for path parameters, request bodies and token claims.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs an identifier from its 16-byte form. Used by the
// persistence layer when reading uuid columns back into the domain; a nil
// UUID read from storage is rejected rather than smuggled into an aggregate.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for the persistence layer, which
// stores identifiers in native uuid columns. Domain code compares with
// IsEqual instead.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers name the same entity.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate fails for the zero value, which only appears when a UUID skipped
// its constructors.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
