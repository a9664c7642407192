package commands_test

import (
	"errors"
	"testing"

	"b2better/internal/core/application/usecases/commands"
	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// placeOrder runs the create handler against mocks and returns the stored order.
func placeOrder(t *testing.T, items ...commands.OrderItemInput) *order.Order {
	t.Helper()
	ctx := t.Context()
	seller := newRetailer(t)
	cmd := newCreateOrderCommand(t, seller.ID(), items...)

	var stored *order.Order
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*order.Order)
	}).Return(nil)
	retailerRepo := new(MockRetailerRepository)
	retailerRepo.On("Get", mock.Anything, seller.ID()).Return(seller, nil)

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("RetailerRepository").Return(retailerRepo)
	uow.On("OrderRepository").Return(orderRepo)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	recorder := new(MockActivityRecorder)
	recorder.On("Record", mock.Anything, mock.Anything)

	placed, err := commands.NewCreateOrderCommandHandler(factory, recorder).Handle(ctx, cmd)
	require.NoError(t, err)
	require.Same(t, placed, stored)
	return placed
}

// orderStore wires an OrderUoW whose repository serves a single order.
func orderStore(o *order.Order) (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository) {
	repo := new(MockOrderRepository)
	repo.On("GetByNumber", mock.Anything, o.Number(), o.UserID()).Return(o, nil)
	repo.On("Update", mock.Anything, o).Return(nil)

	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow, repo
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := placeOrder(t)
	factory, uow, repo := orderStore(o)
	recorder := new(MockActivityRecorder)
	recorder.On("Record", ctx, mock.MatchedBy(func(a commands.RecordActivityCommand) bool {
		return a.Type() == activity.OrderUpdated &&
			a.Details() == "Order "+o.Number().String()+" status changed to shipped"
	})).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(o.UserID(), o.Number().String(), "shipped", "left warehouse", "Jane", activity.Metadata{})
	require.NoError(t, err)

	updated, err := commands.NewUpdateOrderStatusCommandHandler(factory, recorder).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, updated.Status())
	timeline := updated.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, order.Shipped, timeline[1].Status())
	assert.Equal(t, "left warehouse", timeline[1].Note())
	assert.Equal(t, "Jane", timeline[1].UpdatedBy())
	repo.AssertCalled(t, "Update", mock.Anything, o)
	uow.AssertCalled(t, "Commit", mock.Anything)
	recorder.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderOfAnotherUser(t *testing.T) {
	ctx := t.Context()
	o := placeOrder(t)
	stranger := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("GetByNumber", ctx, o.Number(), stranger).Return(nil, errs.NewObjectNotFoundError("order", o.Number())).Once()
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	recorder := new(MockActivityRecorder)

	cmd, err := commands.NewUpdateOrderStatusCommand(stranger, o.Number().String(), "confirmed", "", "Eve", activity.Metadata{})
	require.NoError(t, err)

	_, err = commands.NewUpdateOrderStatusCommandHandler(factory, recorder).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.Pending, o.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	o := placeOrder(t)

	repo := new(MockOrderRepository)
	repo.On("GetByNumber", ctx, o.Number(), o.UserID()).Return(o, nil)
	repo.On("Update", ctx, o).Return(errs.NewConflictError("order", o.Number()))
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewUpdateOrderStatusCommand(o.UserID(), o.Number().String(), "confirmed", "", "Jane", activity.Metadata{})
	require.NoError(t, err)

	_, err = commands.NewUpdateOrderStatusCommandHandler(factory, new(MockActivityRecorder)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), "ORD-123456007", "confirmed", "", "Jane", activity.Metadata{})
	require.NoError(t, err)

	_, err = commands.NewUpdateOrderStatusCommandHandler(factory, new(MockActivityRecorder)).Handle(ctx, cmd)
	require.Error(t, err)
}

func TestUpdateOrderStatusCommandHandler_Handle_AnyTransitionIsAllowed(t *testing.T) {
	ctx := t.Context()
	o := placeOrder(t)
	factory, _, _ := orderStore(o)
	recorder := new(MockActivityRecorder)
	recorder.On("Record", mock.Anything, mock.Anything)
	h := commands.NewUpdateOrderStatusCommandHandler(factory, recorder)

	for _, status := range []string{"delivered", "pending", "returned", "cancelled", "processing"} {
		cmd, err := commands.NewUpdateOrderStatusCommand(o.UserID(), o.Number().String(), status, "", "Jane", activity.Metadata{})
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)
		require.NoError(t, err, status)
	}

	assert.Equal(t, order.Processing, o.Status())
	assert.Len(t, o.Timeline(), 6)
}

func TestOrderLifecycle_ShippedOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	o := placeOrder(t, commands.OrderItemInput{Name: "Monitor", Quantity: 2, UnitPrice: decimal.NewFromInt(60)})

	assert.Equal(t, "120", o.Pricing().Subtotal().String())
	assert.Equal(t, "9.6", o.Pricing().Tax().String())
	assert.Equal(t, "0", o.Pricing().Shipping().String())
	assert.Equal(t, "129.6", o.Pricing().Total().String())

	factory, _, _ := orderStore(o)
	recorder := new(MockActivityRecorder)
	recorder.On("Record", mock.Anything, mock.Anything)

	ship, err := commands.NewUpdateOrderStatusCommand(o.UserID(), o.Number().String(), "shipped", "", "Jane", activity.Metadata{})
	require.NoError(t, err)
	_, err = commands.NewUpdateOrderStatusCommandHandler(factory, recorder).Handle(ctx, ship)
	require.NoError(t, err)

	cancel, err := commands.NewCancelOrderCommand(o.UserID(), o.Number().String(), "", "Jane", activity.Metadata{})
	require.NoError(t, err)
	_, err = commands.NewCancelOrderCommandHandler(factory, recorder).Handle(ctx, cancel)

	var invalidState *errs.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
	assert.Equal(t, "shipped", invalidState.CurrentState)
	assert.Equal(t, order.Shipped, o.Status())
	assert.Len(t, o.Timeline(), 2)
}

func TestOrderLifecycle_PendingOrderIsCancelled(t *testing.T) {
	ctx := t.Context()
	o := placeOrder(t, commands.OrderItemInput{Name: "Desk lamp", Quantity: 1, UnitPrice: decimal.NewFromInt(50)})

	assert.Equal(t, "50", o.Pricing().Subtotal().String())
	assert.Equal(t, "4", o.Pricing().Tax().String())
	assert.Equal(t, "10", o.Pricing().Shipping().String())
	assert.Equal(t, "64", o.Pricing().Total().String())

	factory, _, _ := orderStore(o)
	recorder := new(MockActivityRecorder)
	recorder.On("Record", mock.Anything, activityOfType(activity.OrderCancelled)).Once()

	cancel, err := commands.NewCancelOrderCommand(o.UserID(), o.Number().String(), "", "Jane", activity.Metadata{})
	require.NoError(t, err)
	cancelled, err := commands.NewCancelOrderCommandHandler(factory, recorder).Handle(ctx, cancel)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	timeline := cancelled.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, order.DefaultCancelReason, timeline[1].Note())
	recorder.AssertExpectations(t)
}
