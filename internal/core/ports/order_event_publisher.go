package ports

import (
	"context"

	"b2better/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order domain events to subscribers outside the service.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
