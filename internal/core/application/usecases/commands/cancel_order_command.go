package commands

import (
	"errors"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels one of the user's orders. An empty reason is allowed.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	number    order.Number
	reason    string
	updatedBy string
	metadata  activity.Metadata

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(
	userID kernel.UUID,
	number string,
	reason string,
	updatedBy string,
	metadata activity.Metadata,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		reason:    reason,
		updatedBy: updatedBy,
		metadata:  metadata,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNumber(number),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) UserID() kernel.UUID { return c.userID }
func (c CancelOrderCommand) Number() order.Number { return c.number }
func (c CancelOrderCommand) Reason() string { return c.reason }
func (c CancelOrderCommand) UpdatedBy() string { return c.updatedBy }
func (c CancelOrderCommand) Metadata() activity.Metadata { return c.metadata }

func (c *CancelOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	c.userID = userID
	return nil
}

func (c *CancelOrderCommand) setNumber(number string) error {
	parsed, err := order.ParseNumber(number)
	if err != nil {
		return err
	}

	c.number = parsed
	return nil
}
