package queries

import (
	"errors"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/services"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// TopRetailersLimit caps the retailer ranking in order statistics.
const TopRetailersLimit = 5

// GetOrderStatisticsQuery summarizes the user's active orders placed in the
// current reporting period. Unknown periods are treated as month.
type GetOrderStatisticsQuery struct {
	userID kernel.UUID
	period services.Period

	guard guard.ConstructorGuard
}

func NewGetOrderStatisticsQuery(userID kernel.UUID, period string) (GetOrderStatisticsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrderStatisticsQuery{}, errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	return GetOrderStatisticsQuery{
		userID: userID,
		period: services.ParsePeriod(period),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

func (q GetOrderStatisticsQuery) UserID() kernel.UUID { return q.userID }
func (q GetOrderStatisticsQuery) Period() services.Period { return q.period }

// OrderStatistics aggregates orders of one period.
type OrderStatistics struct {
	TotalOrders       int            `json:"totalOrders"`
	TotalSpent        float64        `json:"totalSpent"`
	AverageOrderValue float64        `json:"averageOrderValue"`
	StatusBreakdown   map[string]int `json:"statusBreakdown"`
	TopRetailers      []TopRetailer  `json:"topRetailers"`
}

// TopRetailer ranks a retailer by the user's spend with it.
type TopRetailer struct {
	Name       string  `json:"name"`
	OrderCount int     `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}
