package order

import (
	"fmt"

	"b2better/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// Statuses are not ordered by a transition table: UpdateStatus accepts any
// status from any status. The only restriction is CanBeCancelled.
type Status string

const (
	Pending    Status = "pending"
	Confirmed  Status = "confirmed"
	Processing Status = "processing"
	Shipped    Status = "shipped"
	Delivered  Status = "delivered"
	Cancelled  Status = "cancelled"
	Returned   Status = "returned"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Processing, Shipped, Delivered, Cancelled, Returned}
}

// ParseStatus converts raw input, e.g. a request body field, into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate returns a ValueIsInvalidError for values outside the seven statuses.
func (s Status) Validate() error {
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}

// CanBeCancelled reports whether an order in this status may still be cancelled.
// Shipped, delivered and already cancelled orders may not.
func (s Status) CanBeCancelled() bool {
	switch s {
	case Shipped, Delivered, Cancelled:
		return false
	default:
		return true
	}
}
