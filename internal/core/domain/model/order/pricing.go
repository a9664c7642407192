package order

import (
	"fmt"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
)

// Pricing holds the monetary breakdown of an order.
//
// Total is derived, never set: NewPricing and WithSubtotal compute it as
// subtotal + tax + shipping - discount and reject a negative result.
type Pricing struct {
	subtotal kernel.Money
	tax      kernel.Money
	shipping kernel.Money
	discount kernel.Money
	total    kernel.Money
}

// NewPricing computes the total from its components.
func NewPricing(subtotal, tax, shipping, discount kernel.Money) (Pricing, error) {
	gross := subtotal.Add(tax).Add(shipping)
	total, err := gross.Sub(discount)
	if err != nil {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause(
			"pricing.discount",
			fmt.Errorf("discount %s exceeds order amount %s", discount, gross),
		)
	}

	return Pricing{
		subtotal: subtotal,
		tax:      tax,
		shipping: shipping,
		discount: discount,
		total:    total,
	}, nil
}

// WithSubtotal returns a copy with a new subtotal and a recomputed total,
// keeping tax, shipping and discount.
func (p Pricing) WithSubtotal(subtotal kernel.Money) (Pricing, error) {
	return NewPricing(subtotal, p.tax, p.shipping, p.discount)
}

func (p Pricing) Subtotal() kernel.Money { return p.subtotal }
func (p Pricing) Tax() kernel.Money { return p.tax }
func (p Pricing) Shipping() kernel.Money { return p.shipping }
func (p Pricing) Discount() kernel.Money { return p.discount }
func (p Pricing) Total() kernel.Money { return p.total }
