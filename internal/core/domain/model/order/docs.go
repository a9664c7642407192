// Package order provides the Order aggregate of the marketplace: a purchase a user
// places against a retailer, with line items, pricing, shipping and payment
// details and a status timeline.
//
// The package includes:
//   - Order: the aggregate root owning items, pricing and the timeline
//   - Status: the seven order statuses and the cancellation rule
//   - Number: the human-readable order number ("ORD-" + 9 digits)
//   - Item, Product, Pricing, Shipping, Address, Payment, Notes: value objects
//   - TimelineEntry: an immutable record of one status change
//
// Key business rules:
//   - An order contains at least one item
//   - Pricing total always equals subtotal + tax + shipping - discount
//   - Every status change appends exactly one timeline entry
//   - Orders that are shipped, delivered or cancelled cannot be cancelled
//   - Any status may follow any other status through UpdateStatus
//   - The order number is assigned once, at creation
package order
