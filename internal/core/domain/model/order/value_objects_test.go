package order_test

import (
	"testing"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	product, err := order.NewProduct("Desk", "Standing desk", "Office Supplies", "DSK-1")
	require.NoError(t, err)

	t.Run("should compute line total", func(t *testing.T) {
		item, err := order.NewItem(product, 3, money(t, "19.99"))

		require.NoError(t, err)
		assert.True(t, item.TotalPrice().Equal(money(t, "59.97")))
		assert.Equal(t, "DSK-1", item.Product().SKU())
	})

	t.Run("should accept free items", func(t *testing.T) {
		item, err := order.NewItem(product, 1, kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, item.TotalPrice().IsZero())
	})

	t.Run("should reject zero and negative quantities", func(t *testing.T) {
		for _, q := range []int{0, -2} {
			_, err := order.NewItem(product, q, money(t, "1"))
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject product without name", func(t *testing.T) {
		_, err := order.NewProduct("  ", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewItem(order.Product{}, 1, money(t, "1"))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewPricing(t *testing.T) {
	t.Run("should derive total", func(t *testing.T) {
		p, err := order.NewPricing(money(t, "50"), money(t, "4"), money(t, "10"), money(t, "5"))

		require.NoError(t, err)
		assert.True(t, p.Total().Equal(money(t, "59")))
	})

	t.Run("should reject discount above order amount", func(t *testing.T) {
		_, err := order.NewPricing(money(t, "5"), kernel.ZeroMoney(), kernel.ZeroMoney(), money(t, "6"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with subtotal keeps other components", func(t *testing.T) {
		p, err := order.NewPricing(money(t, "50"), money(t, "4"), money(t, "10"), kernel.ZeroMoney())
		require.NoError(t, err)

		p, err = p.WithSubtotal(money(t, "70"))

		require.NoError(t, err)
		assert.True(t, p.Tax().Equal(money(t, "4")))
		assert.True(t, p.Total().Equal(money(t, "84")))
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("should accept address without company", func(t *testing.T) {
		address, err := order.NewAddress("Jane", "", "1 Main St", "Austin", "TX", "73301", "USA")

		require.NoError(t, err)
		assert.Equal(t, "Austin", address.City())
		assert.Empty(t, address.Company())
	})

	t.Run("should report each missing field", func(t *testing.T) {
		_, err := order.NewAddress("", "", "", "Austin", "", "73301", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"shippingAddress.name", "shippingAddress.street", "shippingAddress.state", "shippingAddress.country"} {
			assert.Contains(t, err.Error(), field)
		}
		assert.NotContains(t, err.Error(), "shippingAddress.city")
	})
}

func TestNewShipping(t *testing.T) {
	address, err := order.NewAddress("Jane", "", "1 Main St", "Austin", "TX", "73301", "USA")
	require.NoError(t, err)

	shipping, err := order.NewShipping(address, "")
	require.NoError(t, err)
	assert.Equal(t, order.DefaultShippingMethod, shipping.Method())

	shipping, err = order.NewShipping(address, "express")
	require.NoError(t, err)
	assert.Equal(t, "express", shipping.Method())

	_, err = order.NewShipping(order.Address{}, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPayment(t *testing.T) {
	t.Run("should start pending", func(t *testing.T) {
		payment, err := order.NewPayment(order.BankTransfer)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentPending, payment.Status())
		assert.Nil(t, payment.PaidAt())
	})

	t.Run("should parse all methods", func(t *testing.T) {
		for _, raw := range []string{"credit_card", "bank_transfer", "check", "paypal", "stripe"} {
			method, err := order.ParsePaymentMethod(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, method.String())
		}
	})

	t.Run("should reject unknown method", func(t *testing.T) {
		_, err := order.ParsePaymentMethod("cash")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewPayment(order.PaymentMethod("barter"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should parse payment statuses", func(t *testing.T) {
		status, err := order.ParsePaymentStatus("refunded")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentRefunded, status)

		_, err = order.ParsePaymentStatus("bounced")
		require.Error(t, err)
	})
}
