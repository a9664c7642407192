package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/services"
	"b2better/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders.
//
// The retailer must exist and accept orders; otherwise the handler returns an
// ObjectNotFoundError for "retailer" so inactive retailers look exactly like
// missing ones. Pricing comes from the PricingCalculator and the order number
// is generated from the creation time. After commit an order_placed activity
// is recorded.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.PricingCalculator
	activities ActivityRecorder
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, activities ActivityRecorder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewPricingCalculator(),
		activities: activities,
	}
}

// Handle validates the command, persists the order and returns it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	seller, err := uow.RetailerRepository().Get(ctx, cmd.RetailerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundError("retailer", cmd.RetailerID())
	}
	if err != nil {
		return nil, err
	}
	if !seller.CanAcceptOrders() {
		return nil, errs.NewObjectNotFoundError("retailer", cmd.RetailerID())
	}

	items := cmd.Items()
	pricing, err := h.calculator.ComputeOrderPricing(items, kernel.ZeroMoney())
	if err != nil {
		return nil, err
	}

	shipping, err := order.NewShipping(cmd.ShippingAddress(), order.DefaultShippingMethod)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(cmd.PaymentMethod())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	placed, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateNumber(now),
		cmd.UserID(),
		seller.ID(),
		items,
		pricing,
		shipping,
		payment,
		order.NewNotes(cmd.Notes(), ""),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordOrderActivity(ctx, h.activities, cmd.UserID(), activity.OrderPlaced, "Order placed",
		fmt.Sprintf("Order %s placed with %s", placed.Number(), seller.Name()),
		cmd.Metadata(), placed.ID())

	return placed, nil
}

func recordOrderActivity(
	ctx context.Context,
	recorder ActivityRecorder,
	userID kernel.UUID,
	activityType activity.Type,
	action string,
	details string,
	metadata activity.Metadata,
	orderID kernel.UUID,
) {
	cmd, err := NewOrderActivityCommand(userID, activityType, action, details, metadata, orderID)
	if err != nil {
		return
	}
	recorder.Record(ctx, cmd)
}
