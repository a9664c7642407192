package ports

import (
	"context"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/retailer"
)

// RetailerRepository is the retailer directory.
type RetailerRepository interface {
	Add(ctx context.Context, aggregate *retailer.Retailer) error

	// Update persists profile, activity flag and statistics.
	Update(ctx context.Context, aggregate *retailer.Retailer) error

	// Get returns errs.ObjectNotFoundError when no retailer has the id.
	// Inactive retailers are returned; callers decide whether they may be used.
	Get(ctx context.Context, id kernel.UUID) (*retailer.Retailer, error)

	GetAll(ctx context.Context) ([]*retailer.Retailer, error)
}
