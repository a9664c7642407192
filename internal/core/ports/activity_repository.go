package ports

import (
	"context"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
)

// ActivityFilter selects a page of a user's visible activities.
// An empty Type matches every type. Page is 1-indexed.
type ActivityFilter struct {
	UserID kernel.UUID
	Type   activity.Type
	Page   int
	Limit  int
}

// ActivityRepository stores the append-only activity log.
type ActivityRepository interface {
	Add(ctx context.Context, record *activity.Activity) error

	// ListForUser returns visible activities newest first, together with the
	// total number of activities matching the filter.
	ListForUser(ctx context.Context, filter ActivityFilter) ([]*activity.Activity, int64, error)
}
