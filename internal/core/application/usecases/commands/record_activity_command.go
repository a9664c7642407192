package commands

import (
	"errors"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrRecordActivityCommandIsNotConstructed = errors.New(
	"RecordActivityCommand must be created via NewRecordActivityCommand constructor",
)

// RecordActivityCommand appends one entry to a user's activity log.
type RecordActivityCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	activityType activity.Type
	action       string
	details      string
	metadata     activity.Metadata
	related      *activity.RelatedEntity

	guard guard.ConstructorGuard
}

// NewRecordActivityCommand validates the user and type. Length limits on action and
// details are enforced when the activity is built.
func NewRecordActivityCommand(
	userID kernel.UUID,
	activityType activity.Type,
	action string,
	details string,
	metadata activity.Metadata,
	related *activity.RelatedEntity,
) (RecordActivityCommand, error) {
	cmd := RecordActivityCommand{
		action:   action,
		details:  details,
		metadata: metadata,
		related:  related,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setType(activityType),
	); err != nil {
		return RecordActivityCommand{}, err
	}

	return cmd, nil
}

// NewOrderActivityCommand is a shortcut for activities about a single order.
func NewOrderActivityCommand(
	userID kernel.UUID,
	activityType activity.Type,
	action string,
	details string,
	metadata activity.Metadata,
	orderID kernel.UUID,
) (RecordActivityCommand, error) {
	return NewRecordActivityCommand(userID, activityType, action, details, metadata,
		&activity.RelatedEntity{Type: activity.EntityOrder, ID: orderID})
}

func (c RecordActivityCommand) Validate() error {
	return c.guard.Validate(ErrRecordActivityCommandIsNotConstructed)
}

func (c RecordActivityCommand) UserID() kernel.UUID { return c.userID }
func (c RecordActivityCommand) Type() activity.Type { return c.activityType }
func (c RecordActivityCommand) Action() string { return c.action }
func (c RecordActivityCommand) Details() string { return c.details }
func (c RecordActivityCommand) Metadata() activity.Metadata { return c.metadata }

func (c RecordActivityCommand) RelatedEntity() *activity.RelatedEntity {
	if c.related == nil {
		return nil
	}
	related := *c.related
	return &related
}

func (c *RecordActivityCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	c.userID = userID
	return nil
}

func (c *RecordActivityCommand) setType(activityType activity.Type) error {
	if _, err := activity.ParseType(string(activityType)); err != nil {
		return err
	}

	c.activityType = activityType
	return nil
}
