// Package services contains domain services that implement business logic
// spanning multiple aggregates. The OrderPromoter derives a confirmed order
// aggregate from an agency's draft selection, freezing catalog snapshots into
// immutable order items.
package services
