package queries

import (
	"errors"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrGetRecentOrdersQueryIsNotConstructed = errors.New(
	"GetRecentOrdersQuery must be created via NewGetRecentOrdersQuery constructor",
)

const (
	DefaultRecentOrdersLimit = 5
	MaxRecentOrdersLimit     = 50
)

// GetRecentOrdersQuery returns the user's newest active orders for the dashboard.
type GetRecentOrdersQuery struct {
	userID kernel.UUID
	limit  int

	guard guard.ConstructorGuard
}

func NewGetRecentOrdersQuery(userID kernel.UUID, limit int) (GetRecentOrdersQuery, error) {
	var userErr error
	if err := userID.Validate(); err != nil {
		userErr = errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	if err := errors.Join(userErr, validateLimit(limit, MaxRecentOrdersLimit)); err != nil {
		return GetRecentOrdersQuery{}, err
	}

	return GetRecentOrdersQuery{userID: userID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentOrdersQueryIsNotConstructed)
}

func (q GetRecentOrdersQuery) UserID() kernel.UUID { return q.userID }
func (q GetRecentOrdersQuery) Limit() int { return q.limit }

type RecentOrder struct {
	ID       string `json:"id"`
	Supplier string `json:"supplier"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}
