package order_test

import (
	"testing"

	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should accept all seven statuses", func(t *testing.T) {
		for _, raw := range []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled", "returned"} {
			status, err := order.ParseStatus(raw)

			require.NoError(t, err, raw)
			assert.Equal(t, raw, status.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "all", "Pending", "lost"} {
			_, err := order.ParseStatus(raw)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestStatus_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected bool
	}{
		{order.Pending, true},
		{order.Confirmed, true},
		{order.Processing, true},
		{order.Returned, true},
		{order.Shipped, false},
		{order.Delivered, false},
		{order.Cancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.CanBeCancelled())
		})
	}
}

func TestStatuses(t *testing.T) {
	statuses := order.Statuses()

	assert.Len(t, statuses, 7)
	assert.Equal(t, order.Pending, statuses[0])
	for _, s := range statuses {
		require.NoError(t, s.Validate())
	}
}
