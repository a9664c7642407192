package queries

import (
	"errors"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrGetRecommendationsQueryIsNotConstructed = errors.New(
	"GetRecommendationsQuery must be created via NewGetRecommendationsQuery constructor",
)

const (
	DefaultRecommendationsLimit = 6
	MaxRecommendationsLimit     = 50
)

// GetRecommendationsQuery asks the recommendation service for products suited to the user.
type GetRecommendationsQuery struct {
	userID kernel.UUID
	limit  int

	guard guard.ConstructorGuard
}

func NewGetRecommendationsQuery(userID kernel.UUID, limit int) (GetRecommendationsQuery, error) {
	var userErr error
	if err := userID.Validate(); err != nil {
		userErr = errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	if err := errors.Join(userErr, validateLimit(limit, MaxRecommendationsLimit)); err != nil {
		return GetRecommendationsQuery{}, err
	}

	return GetRecommendationsQuery{userID: userID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecommendationsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecommendationsQueryIsNotConstructed)
}

func (q GetRecommendationsQuery) UserID() kernel.UUID { return q.userID }
func (q GetRecommendationsQuery) Limit() int { return q.limit }
