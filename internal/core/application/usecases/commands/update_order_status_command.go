package commands

import (
	"errors"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves one of the user's orders to a new status.
// Any status may follow any other; only the value itself is validated.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	number    order.Number
	status    order.Status
	note      string
	updatedBy string
	metadata  activity.Metadata

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the owner, order number and target status.
// updatedBy is the display name of the acting user and is written to the timeline.
func NewUpdateOrderStatusCommand(
	userID kernel.UUID,
	number string,
	status string,
	note string,
	updatedBy string,
	metadata activity.Metadata,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		note:      note,
		updatedBy: updatedBy,
		metadata:  metadata,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNumber(number),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateOrderStatusCommand) Number() order.Number { return c.number }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
func (c UpdateOrderStatusCommand) Note() string { return c.note }
func (c UpdateOrderStatusCommand) UpdatedBy() string { return c.updatedBy }
func (c UpdateOrderStatusCommand) Metadata() activity.Metadata { return c.metadata }

func (c *UpdateOrderStatusCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	c.userID = userID
	return nil
}

func (c *UpdateOrderStatusCommand) setNumber(number string) error {
	parsed, err := order.ParseNumber(number)
	if err != nil {
		return err
	}

	c.number = parsed
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
