package commands

import (
	"context"
	"fmt"
	"time"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a status change and appends the
// matching timeline entry in the same save. Orders of other users are reported
// as not found. A concurrent change to the same order surfaces as a ConflictError.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	activities ActivityRecorder
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	activities ActivityRecorder,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		activities: activities,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	if err = current.UpdateStatus(cmd.Status(), cmd.Note(), cmd.UpdatedBy(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordOrderActivity(ctx, h.activities, cmd.UserID(), activity.OrderUpdated, "Order status updated",
		fmt.Sprintf("Order %s status changed to %s", current.Number(), cmd.Status()),
		cmd.Metadata(), current.ID())

	return current, nil
}
