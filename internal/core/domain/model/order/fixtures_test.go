package order_test

import (
	"testing"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, name string, quantity int, unitPrice string) order.Item {
	t.Helper()
	product, err := order.NewProduct(name, "", "Office Supplies", "SKU-"+name)
	require.NoError(t, err)
	item, err := order.NewItem(product, quantity, money(t, unitPrice))
	require.NoError(t, err)
	return item
}

func newShipping(t *testing.T) order.Shipping {
	t.Helper()
	address, err := order.NewAddress("Jane Buyer", "Acme", "1 Main St", "Austin", "TX", "73301", "USA")
	require.NoError(t, err)
	shipping, err := order.NewShipping(address, "")
	require.NoError(t, err)
	return shipping
}

func newPayment(t *testing.T) order.Payment {
	t.Helper()
	payment, err := order.NewPayment(order.CreditCard)
	require.NoError(t, err)
	return payment
}

// newPlacedOrder builds an order whose pricing follows the marketplace rules
// (8% tax, free shipping above 100).
func newPlacedOrder(t *testing.T, tax, shipping string, items ...order.Item) *order.Order {
	t.Helper()
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice())
	}
	pricing, err := order.NewPricing(subtotal, money(t, tax), money(t, shipping), kernel.ZeroMoney())
	require.NoError(t, err)

	number, err := order.NewNumber(fixedNow, 42)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
		items, pricing, newShipping(t), newPayment(t), order.NewNotes("", ""), fixedNow,
	)
	require.NoError(t, err)
	return o
}
