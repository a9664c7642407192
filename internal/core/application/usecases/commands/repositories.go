// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"b2better/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RetailerRepoFactory provides access to the retailer directory within a transaction.
	RetailerRepoFactory interface {
		RetailerRepository() ports.RetailerRepository
	}

	// OrderUoW manages transactions for order-only operations such as status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across orders and retailers.
	// Used when placing orders and when refreshing retailer statistics.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   seller, err := uow.RetailerRepository().Get(ctx, retailerID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, placed)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RetailerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// ActivityRecorder appends to the activity log without ever failing the caller.
	ActivityRecorder interface {
		Record(ctx context.Context, cmd RecordActivityCommand)
	}
)
