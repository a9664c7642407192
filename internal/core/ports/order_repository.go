// Package ports defines the contracts between the core and its adapters:
// repositories for orders, retailers and activities, the unit of work,
// the recommendation service client and the order event publisher.
package ports

import (
	"context"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/model/retailer"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items and timeline.
type OrderRepository interface {
	// Add persists a newly placed order.
	// The order number must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write succeeds only if
	// the stored version equals aggregate.Version(); otherwise it returns an
	// errs.ConflictError. On success the aggregate's version is advanced.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an active order owned by userID.
	// Returns errs.ObjectNotFoundError when the order is missing, inactive or
	// owned by someone else.
	GetByNumber(ctx context.Context, number order.Number, userID kernel.UUID) (*order.Order, error)

	// SummarizeByRetailer aggregates active orders per retailer: order count,
	// revenue, distinct customers and the most recent order date.
	SummarizeByRetailer(ctx context.Context) (map[kernel.UUID]retailer.Stats, error)
}
