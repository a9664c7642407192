// Package services contains stateless domain services for the marketplace.
//
// Services:
//   - PricingCalculator: line totals, 8% tax, free shipping above 100 and order totals
//   - Period and Comparison: reporting windows and period-over-period percentage change
//   - AmountFormatter: en-US currency rendering of money for listings ("$1,234.5")
package services
