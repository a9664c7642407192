package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}

func cancelledEvent(t *testing.T) order.Event {
	t.Helper()

	number, err := order.ParseNumber("ORD-123456789")
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("64")
	require.NoError(t, err)

	return order.Event{
		Type:           order.EventCancelled,
		OrderID:        kernel.NewUUID(),
		OrderNumber:    number,
		UserID:         kernel.NewUUID(),
		RetailerID:     kernel.NewUUID(),
		Status:         order.Cancelled,
		PreviousStatus: order.Pending,
		Total:          total,
		Note:           "Cancelled by customer",
		OccurredAt:     time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	ch := &MockChannel{}
	event := cancelledEvent(t)
	var published amqp.Publishing
	ch.On("Publish", "orders", "order.cancelled", false, false, mock.AnythingOfType("amqp.Publishing")).
		Run(func(args mock.Arguments) { published = args.Get(4).(amqp.Publishing) }).
		Return(nil).Once()

	publisher := newPublisher(ch, "orders")
	err := publisher.Publish(t.Context(), event)

	require.NoError(t, err)
	ch.AssertExpectations(t)

	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.NotEmpty(t, published.MessageId)
	assert.Equal(t, "ORD-123456789", published.Headers["order_number"])
	assert.Equal(t, "order.cancelled", published.Headers["event_type"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(published.Body, &body))
	assert.Equal(t, "order.cancelled", body["type"])
	assert.Equal(t, "cancelled", body["status"])
	assert.Equal(t, "pending", body["previousStatus"])
	assert.Equal(t, "64", body["total"])
	assert.Equal(t, event.OrderID.String(), body["orderId"])
	assert.Equal(t, "2025-03-04T10:00:00Z", body["occurredAt"])
}

func TestPublisher_Publish_ChannelError(t *testing.T) {
	ch := &MockChannel{}
	brokerErr := errors.New("channel/connection is not open")
	ch.On("Publish", mock.Anything, mock.Anything, false, false, mock.Anything).Return(brokerErr)

	publisher := newPublisher(ch, "orders")
	err := publisher.Publish(t.Context(), cancelledEvent(t))

	require.ErrorIs(t, err, brokerErr)
}

func TestPublisher_Publish_CancelledContext(t *testing.T) {
	ch := &MockChannel{}
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	publisher := newPublisher(ch, "orders")
	err := publisher.Publish(ctx, cancelledEvent(t))

	require.ErrorIs(t, err, context.Canceled)
	ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisher_Close(t *testing.T) {
	ch := &MockChannel{}
	ch.On("Close").Return(nil).Once()

	publisher := newPublisher(ch, "orders")

	require.NoError(t, publisher.Close())
	require.NoError(t, publisher.Close(), "second close is a no-op")
	assert.ErrorIs(t, publisher.Publish(t.Context(), cancelledEvent(t)), ErrPublisherClosed)
	ch.AssertExpectations(t)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().Publish(t.Context(), cancelledEvent(t)))
	assert.NoError(t, NewNoopPublisher().Close())
}
