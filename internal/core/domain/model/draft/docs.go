// Package draft provides the agency-owned draft line item ("ready order"): a
// tentative product selection that has not been confirmed into an order yet.
//
// Key business rules:
//   - Drafts are scoped to a single agency; other roles never see them
//   - Quantity has a hard floor of one, enforced on creation and on every adjustment
//   - Unit price and product name are snapshotted from the catalog at draft time
//   - Promotion into an order consumes the drafts atomically
package draft
