// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DraftRepoFactory provides access to the draft repository within a transaction.
	DraftRepoFactory interface {
		DraftRepository() ports.DraftRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// DraftUoW manages transactions for draft-only operations.
	// Used by the basket commands that never touch order aggregates.
	DraftUoW interface {
		TxManager
		DraftRepoFactory
	}

	// DraftUoWFactory creates new draft unit of work instances.
	DraftUoWFactory interface {
		Create() DraftUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PromotionUoW manages the transaction that turns drafts into an order.
	// Creating the order and consuming the drafts must commit or roll back
	// together, so both repositories share one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   draftRepo := uow.DraftRepository()
	//   // ... create the order, delete the drafts
	//
	//   err = uow.Commit(ctx)
	PromotionUoW interface {
		TxManager
		DraftRepoFactory
		OrderRepoFactory
	}

	// PromotionUoWFactory creates new promotion unit of work instances.
	PromotionUoWFactory interface {
		Create() PromotionUoW
	}

	// DispatchUoW manages transactions that coordinate order status changes
	// with the driver exclusivity flag.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
