package services

import (
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// DefaultTaxRate is the flat sales tax applied to every subtotal.
	DefaultTaxRate = decimal.RequireFromString("0.08")
	// DefaultFreeShippingThreshold is the subtotal that must be exceeded for free shipping.
	DefaultFreeShippingThreshold = decimal.NewFromInt(100)
	// DefaultFlatShipping is charged when the subtotal does not exceed the threshold.
	DefaultFlatShipping = decimal.NewFromInt(10)
)

// PricingCalculator derives order pricing from line items.
//
// Business rules:
//   - item total = quantity × unit price
//   - subtotal = sum of item totals
//   - tax = subtotal × tax rate, not rounded
//   - shipping = 0 when subtotal > threshold, otherwise the flat fee (a subtotal of exactly 100 pays shipping)
//   - total = subtotal + tax + shipping - discount
//
// Example:
//
//	calc := services.NewPricingCalculator()
//	pricing, err := calc.ComputeOrderPricing(items, kernel.ZeroMoney())
//	// items [{2 × 60}] → subtotal 120, tax 9.6, shipping 0, total 129.6
type PricingCalculator struct {
	taxRate               decimal.Decimal
	freeShippingThreshold kernel.Money
	flatShipping          kernel.Money
}

// NewPricingCalculator returns a calculator with the marketplace defaults.
func NewPricingCalculator() PricingCalculator {
	threshold, _ := kernel.NewMoney(DefaultFreeShippingThreshold)
	flat, _ := kernel.NewMoney(DefaultFlatShipping)
	return PricingCalculator{
		taxRate:               DefaultTaxRate,
		freeShippingThreshold: threshold,
		flatShipping:          flat,
	}
}

// ComputeItemTotal returns quantity × unitPrice. Quantity must be at least 1.
func (c PricingCalculator) ComputeItemTotal(quantity int, unitPrice kernel.Money) (kernel.Money, error) {
	if quantity < 1 {
		return kernel.Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return unitPrice.Multiply(quantity)
}

// ComputeOrderPricing prices a list of items. Item totals are recomputed from
// quantity and unit price rather than trusted.
func (c PricingCalculator) ComputeOrderPricing(items []order.Item, discount kernel.Money) (order.Pricing, error) {
	if len(items) == 0 {
		return order.Pricing{}, order.ErrOrderHasNoItems
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		total, err := c.ComputeItemTotal(item.Quantity(), item.UnitPrice())
		if err != nil {
			return order.Pricing{}, err
		}
		subtotal = subtotal.Add(total)
	}

	return order.NewPricing(subtotal, c.ComputeTax(subtotal), c.ComputeShipping(subtotal), discount)
}

// ComputeTax returns subtotal × tax rate.
func (c PricingCalculator) ComputeTax(subtotal kernel.Money) kernel.Money {
	return subtotal.ApplyRate(c.taxRate)
}

// ComputeShipping returns zero above the free shipping threshold and the flat fee otherwise.
func (c PricingCalculator) ComputeShipping(subtotal kernel.Money) kernel.Money {
	if subtotal.GreaterThan(c.freeShippingThreshold) {
		return kernel.ZeroMoney()
	}
	return c.flatShipping
}
