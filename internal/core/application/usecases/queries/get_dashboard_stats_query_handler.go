package queries

import (
	"context"
	"strconv"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler reports order count, revenue, distinct
// retailers and the orders-per-retailer rate for the current period, each with
// its percentage change against the previous period.
type GetDashboardStatsQueryHandler struct {
	db        *gorm.DB
	formatter services.AmountFormatter
}

func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db, formatter: services.NewAmountFormatter()}
}

type periodTotals struct {
	Orders    int
	Revenue   decimal.Decimal
	Suppliers int
}

func (h GetDashboardStatsQueryHandler) Handle(ctx context.Context, query GetDashboardStatsQuery) (DashboardStats, error) {
	if err := query.Validate(); err != nil {
		return DashboardStats{}, err
	}

	current, previous := query.Period().CurrentAndPrevious(time.Now().UTC())

	cur, err := h.totals(ctx, query.UserID(), "created_at >= ? AND created_at <= ?", current)
	if err != nil {
		return DashboardStats{}, err
	}

	prev, err := h.totals(ctx, query.UserID(), "created_at >= ? AND created_at < ?", previous)
	if err != nil {
		return DashboardStats{}, err
	}

	curRate := services.ConversionRate(cur.Orders, cur.Suppliers)
	prevRate := services.ConversionRate(prev.Orders, prev.Suppliers)

	revenue := kernel.ZeroMoney()
	if m, mErr := kernel.NewMoney(cur.Revenue); mErr == nil {
		revenue = m
	}

	return DashboardStats{
		TotalOrders: metric(h.formatter.Count(cur.Orders),
			services.Compare(float64(cur.Orders), float64(prev.Orders))),
		Revenue: metric(h.formatter.Currency(revenue),
			services.Compare(cur.Revenue.InexactFloat64(), prev.Revenue.InexactFloat64())),
		ActiveSuppliers: metric(strconv.Itoa(cur.Suppliers),
			services.Compare(float64(cur.Suppliers), float64(prev.Suppliers))),
		ConversionRate: metric(services.ConversionRateLabel(cur.Orders, cur.Suppliers),
			services.Compare(curRate, prevRate)),
	}, nil
}

func (h GetDashboardStatsQueryHandler) totals(
	ctx context.Context,
	userID kernel.UUID,
	window string,
	w services.Window,
) (periodTotals, error) {
	var totals periodTotals
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS orders,
			COALESCE(SUM(total), 0) AS revenue,
			COUNT(DISTINCT retailer_id) AS suppliers
		FROM orders
		WHERE user_id = ? AND is_active = true AND `+window,
		userID.Bytes(), w.From, w.To,
	).Scan(&totals).Error
	return totals, err
}

func metric(value string, c services.Comparison) DashboardMetric {
	return DashboardMetric{Value: value, Change: c.ChangeLabel(), Trend: string(c.Trend)}
}
