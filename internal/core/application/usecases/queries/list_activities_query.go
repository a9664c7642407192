package queries

import (
	"errors"
	"time"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrListActivitiesQueryIsNotConstructed = errors.New(
	"ListActivitiesQuery must be created via NewListActivitiesQuery constructor",
)

const DefaultActivitiesLimit = 20

// ListActivitiesQuery pages through the user's visible activity log, newest
// first, optionally narrowed to one activity type.
type ListActivitiesQuery struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	activityType activity.Type
	page         int
	limit        int

	guard guard.ConstructorGuard
}

// NewListActivitiesQuery accepts an empty activityType to list every type.
func NewListActivitiesQuery(userID kernel.UUID, activityType string, page, limit int) (ListActivitiesQuery, error) {
	q := ListActivitiesQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setUserID(userID),
		q.setType(activityType),
		validatePage(page),
		validateLimit(limit, MaxPageLimit),
	); err != nil {
		return ListActivitiesQuery{}, err
	}

	q.page = page
	q.limit = limit
	return q, nil
}

func (q ListActivitiesQuery) Validate() error {
	return q.guard.Validate(ErrListActivitiesQueryIsNotConstructed)
}

func (q ListActivitiesQuery) UserID() kernel.UUID { return q.userID }
func (q ListActivitiesQuery) Type() activity.Type { return q.activityType }
func (q ListActivitiesQuery) Page() int { return q.page }
func (q ListActivitiesQuery) Limit() int { return q.limit }

func (q *ListActivitiesQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	q.userID = userID
	return nil
}

func (q *ListActivitiesQuery) setType(activityType string) error {
	if activityType == "" {
		return nil
	}
	parsed, err := activity.ParseType(activityType)
	if err != nil {
		return err
	}
	q.activityType = parsed
	return nil
}

type ActivityView struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Action        string             `json:"action"`
	Details       string             `json:"details"`
	Metadata      ActivityMetadata   `json:"metadata"`
	RelatedEntity *RelatedEntityView `json:"relatedEntity,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type ActivityMetadata struct {
	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Device    string `json:"device,omitempty"`
	Browser   string `json:"browser,omitempty"`
	OS        string `json:"os,omitempty"`
}

type RelatedEntityView struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type ListActivitiesQueryResponse struct {
	Activities []ActivityView
	Pagination Pagination
}
