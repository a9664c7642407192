package queries

import (
	"errors"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/services"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery compares the current period with the previous period
// of equal length.
type GetDashboardStatsQuery struct {
	userID kernel.UUID
	period services.Period

	guard guard.ConstructorGuard
}

func NewGetDashboardStatsQuery(userID kernel.UUID, period string) (GetDashboardStatsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetDashboardStatsQuery{}, errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	return GetDashboardStatsQuery{
		userID: userID,
		period: services.ParsePeriod(period),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

func (q GetDashboardStatsQuery) UserID() kernel.UUID { return q.userID }
func (q GetDashboardStatsQuery) Period() services.Period { return q.period }

// DashboardMetric is a formatted value with its change against the previous period.
type DashboardMetric struct {
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

type DashboardStats struct {
	TotalOrders     DashboardMetric `json:"totalOrders"`
	Revenue         DashboardMetric `json:"revenue"`
	ActiveSuppliers DashboardMetric `json:"activeSuppliers"`
	ConversionRate  DashboardMetric `json:"conversionRate"`
}
