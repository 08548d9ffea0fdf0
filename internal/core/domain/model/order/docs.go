// Package order provides domain entities and business logic for the agency
// order lifecycle. It implements the AgencyOrder aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - AgencyOrder: The aggregate root holding the confirmed header, frozen items and totals
//   - Item: An immutable line item with catalog snapshots taken at promotion time
//   - Status: A state machine that enforces valid lifecycle transitions
//   - DeliveryAssignment: The driver snapshot embedded at dispatch time
//
// Key business rules:
//   - A newly promoted order starts in PendingApproval
//   - Status follows PendingApproval -> ReadyToShip -> InTransit -> Delivered;
//     Delivered is terminal
//   - Items and totals are immutable after promotion; prices are never re-read
//     from the catalog
//   - The reserve date may only change before dispatch; deletion is only legal
//     before dispatch
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
