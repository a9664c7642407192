package commands

import (
	"context"
	"fmt"
	"time"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order unless it has already shipped,
// been delivered or been cancelled, in which case the aggregate returns an
// InvalidStateError naming the current status and nothing is saved.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	activities ActivityRecorder
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, activities ActivityRecorder) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		activities: activities,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.GetByNumber(ctx, cmd.Number(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = current.Cancel(cmd.Reason(), cmd.UpdatedBy(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	reason := cmd.Reason()
	if reason == "" {
		reason = "No reason provided"
	}
	recordOrderActivity(ctx, h.activities, cmd.UserID(), activity.OrderCancelled, "Order cancelled",
		fmt.Sprintf("Order %s cancelled: %s", current.Number(), reason),
		cmd.Metadata(), current.ID())

	return current, nil
}
