package order

import (
	"errors"
	"fmt"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

// DefaultCancelReason is recorded when a customer cancels without a reason.
const DefaultCancelReason = "Cancelled by customer"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is placed with an empty item list.
	ErrOrderHasNoItems = errs.NewValueIsRequiredErrorWithCause(
		"items",
		errors.New("Order must contain at least one item"),
	)
)

// Order is a purchase placed by a user against a retailer. It is the aggregate
// root for its items, pricing, shipping, payment, notes and timeline.
//
// Order follows these invariants:
//   - Contains at least one item
//   - Pricing subtotal equals the sum of item totals, and the total is derived from it
//   - Every status change appends exactly one timeline entry
//   - The order number never changes after creation
//   - Shipped, delivered and cancelled orders cannot be cancelled
//
// Mutating methods record domain events, which the unit of work publishes once
// the change is committed.
type Order struct {
	id         kernel.UUID
	number     Number
	userID     kernel.UUID
	retailerID kernel.UUID

	items    []Item
	pricing  Pricing
	status   Status
	shipping Shipping
	payment  Payment
	notes    Notes
	timeline []TimelineEntry
	isActive bool

	// version is the persisted revision, compared on update to detect lost updates
	version   int
	createdAt time.Time
	updatedAt time.Time

	events []Event
	guard  guard.ConstructorGuard
}

// NewOrder places a new order in Pending status.
//
// Parameters:
//   - id: internal identifier
//   - number: human-readable number, see GenerateNumber
//   - userID: the customer placing the order
//   - retailerID: the retailer fulfilling it
//   - items: at least one line item
//   - pricing: pricing computed from items, see services.PricingCalculator
//   - shipping, payment, notes: checkout details
//   - now: creation time
//
// The order starts with a single timeline entry for Pending authored by SystemActor
// and records an EventPlaced event.
//
// Example:
//
//	pricing, _ := calculator.ComputeOrderPricing(items, kernel.ZeroMoney())
//	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(now), userID, retailerID,
//	    items, pricing, shipping, payment, order.NewNotes("leave at reception", ""), now)
func NewOrder(
	id kernel.UUID,
	number Number,
	userID kernel.UUID,
	retailerID kernel.UUID,
	items []Item,
	pricing Pricing,
	shipping Shipping,
	payment Payment,
	notes Notes,
	now time.Time,
) (*Order, error) {
	o := &Order{
		shipping:  shipping,
		payment:   payment,
		notes:     notes,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setRetailerID(retailerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := o.setPricing(pricing); err != nil {
		return nil, err
	}

	o.changeStatus(Pending, fmt.Sprintf("Order status changed to %s", Pending), SystemActor, now)
	o.raise(EventPlaced, "", "", now)

	return o, nil
}

// Snapshot carries the persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID         kernel.UUID
	Number     Number
	UserID     kernel.UUID
	RetailerID kernel.UUID
	Items      []Item
	Pricing    Pricing
	Status     Status
	Shipping   Shipping
	Payment    Payment
	Notes      Notes
	Timeline   []TimelineEntry
	IsActive   bool
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RestoreOrder rebuilds an order loaded from storage. Identity and status are
// validated; pricing is trusted as stored. No events are recorded.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		items:     append([]Item(nil), s.Items...),
		pricing:   s.Pricing,
		shipping:  s.Shipping,
		payment:   s.Payment,
		notes:     s.Notes,
		timeline:  append([]TimelineEntry(nil), s.Timeline...),
		isActive:  s.IsActive,
		version:   s.Version,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setUserID(s.UserID),
		o.setRetailerID(s.RetailerID),
		o.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Number() Number { return o.number }
func (o *Order) UserID() kernel.UUID { return o.userID }
func (o *Order) RetailerID() kernel.UUID { return o.retailerID }
func (o *Order) Pricing() Pricing { return o.pricing }
func (o *Order) Status() Status { return o.status }
func (o *Order) Shipping() Shipping { return o.shipping }
func (o *Order) Payment() Payment { return o.payment }
func (o *Order) Notes() Notes { return o.notes }
func (o *Order) IsActive() bool { return o.isActive }
func (o *Order) Version() int { return o.version }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Timeline returns a copy of the status history, oldest first.
func (o *Order) Timeline() []TimelineEntry {
	return append([]TimelineEntry(nil), o.timeline...)
}

// UpdateStatus moves the order to newStatus and appends one timeline entry with
// note and updatedBy. Any valid status is accepted regardless of the current one.
//
// Returns a ValueIsInvalidError for statuses outside the seven known values;
// the order is left unchanged in that case.
func (o *Order) UpdateStatus(newStatus Status, note, updatedBy string, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	previous := o.status
	o.changeStatus(newStatus, note, updatedBy, now)
	o.raise(EventStatusChanged, previous, note, now)
	return nil
}

// Cancel moves the order to Cancelled. An empty reason is recorded as
// DefaultCancelReason.
//
// Returns an InvalidStateError naming the current status when the order is
// shipped, delivered or already cancelled; the order is left unchanged.
func (o *Order) Cancel(reason, updatedBy string, now time.Time) error {
	if !o.status.CanBeCancelled() {
		return errs.NewInvalidStateError("Order cannot be cancelled", o.status.String())
	}
	if reason == "" {
		reason = DefaultCancelReason
	}

	previous := o.status
	o.changeStatus(Cancelled, reason, updatedBy, now)
	o.raise(EventCancelled, previous, reason, now)
	return nil
}

// Recalculate re-derives the subtotal from the current items and the total
// from it, keeping tax, shipping and discount.
func (o *Order) Recalculate() error {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.TotalPrice())
	}

	pricing, err := o.pricing.WithSubtotal(subtotal)
	if err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

// AdvanceVersion is called by the repository once an update has been stored.
func (o *Order) AdvanceVersion() {
	o.version++
}

// DomainEvents returns events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	return append([]Event(nil), o.events...)
}

// ClearDomainEvents drops recorded events after they have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) changeStatus(status Status, note, updatedBy string, now time.Time) {
	o.status = status
	o.timeline = append(o.timeline, NewTimelineEntry(status, now, note, updatedBy))
	o.updatedAt = now
}

func (o *Order) raise(eventType EventType, previous Status, note string, now time.Time) {
	o.events = append(o.events, Event{
		Type:           eventType,
		OrderID:        o.id,
		OrderNumber:    o.number,
		UserID:         o.userID,
		RetailerID:     o.retailerID,
		Status:         o.status,
		PreviousStatus: previous,
		Total:          o.pricing.Total(),
		Note:           note,
		OccurredAt:     now,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if _, err := ParseNumber(number.String()); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("retailerId", err)
	}
	o.retailerID = retailerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	o.items = append([]Item(nil), items...)
	return nil
}

// setPricing accepts pricing only if its subtotal matches the items.
func (o *Order) setPricing(pricing Pricing) error {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.TotalPrice())
	}
	if !pricing.Subtotal().Equal(subtotal) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pricing.subtotal",
			fmt.Errorf("%s does not match item total %s", pricing.Subtotal(), subtotal),
		)
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
