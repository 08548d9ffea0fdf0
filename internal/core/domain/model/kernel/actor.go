package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Role identifies which of the three actor kinds issued a request.
type Role string

const (
	// RoleAgency is a regional retail tenant that drafts and places orders.
	RoleAgency Role = "agency"
	// RoleHeadOffice is the central tenant that approves orders.
	RoleHeadOffice Role = "head_office"
	// RoleLogistics is a tenant that dispatches drivers and fulfills orders.
	RoleLogistics Role = "logistics"
)

// Validate checks that the role is one of the three known actor kinds.
func (r Role) Validate() error {
	switch r {
	case RoleAgency, RoleHeadOffice, RoleLogistics:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Actor is the resolved caller identity passed into every core operation.
// It is produced server-side from a verified credential; tenant identity is
// never read from an untrusted client field.
//
// For RoleAgency the tenant ID is the owning agency; for RoleHeadOffice and
// RoleLogistics it identifies the head office or logistics company tenant.
// Actor is immutable and safe for concurrent use.
//
// Example usage:
//
//	actor, err := kernel.NewActor(kernel.RoleAgency, agencyID)
//	if err != nil {
//	    // credential resolved to an invalid identity
//	}
//	drafts, err := listDraftsHandler.Handle(ctx, queries.NewListDraftsQuery(actor))
type Actor struct {
	role     Role
	tenantID UUID
}

// NewActor creates an Actor with the given role and tenant identity.
// Both must be valid; the zero Actor fails Validate.
func NewActor(role Role, tenantID UUID) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if err := tenantID.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, tenantID: tenantID}, nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// TenantID returns the tenant the actor belongs to. For agency actors this is
// the agency whose drafts and orders the actor may see and mutate.
func (a Actor) TenantID() UUID {
	return a.tenantID
}

// Validate checks that the actor carries a known role and a constructed tenant ID.
func (a Actor) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	return a.tenantID.Validate()
}

// IsAgency reports whether the actor is an agency tenant.
func (a Actor) IsAgency() bool {
	return a.role == RoleAgency
}

// IsHeadOffice reports whether the actor is the head office.
func (a Actor) IsHeadOffice() bool {
	return a.role == RoleHeadOffice
}

// IsLogistics reports whether the actor is a logistics company.
func (a Actor) IsLogistics() bool {
	return a.role == RoleLogistics
}
