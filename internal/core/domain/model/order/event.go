package order

import (
	"time"

	"b2better/internal/core/domain/model/kernel"
)

// EventType names a fact about an order that other systems may subscribe to.
type EventType string

const (
	EventPlaced        EventType = "order.placed"
	EventStatusChanged EventType = "order.status_changed"
	EventCancelled     EventType = "order.cancelled"
)

// Event is raised by the aggregate when it changes and published after the
// change is committed.
type Event struct {
	Type           EventType
	OrderID        kernel.UUID
	OrderNumber    Number
	UserID         kernel.UUID
	RetailerID     kernel.UUID
	Status         Status
	PreviousStatus Status
	Total          kernel.Money
	Note           string
	OccurredAt     time.Time
}
