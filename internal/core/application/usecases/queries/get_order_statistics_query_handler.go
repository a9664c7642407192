package queries

import (
	"context"
	"time"

	"b2better/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderStatisticsQueryHandler computes totals, the average order value, a
// status breakdown and the top retailers by spend. Every aggregate is computed
// by the database.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (OrderStatistics, error) {
	if err := query.Validate(); err != nil {
		return OrderStatistics{}, err
	}

	now := time.Now().UTC()
	from := query.Period().Start(now)
	userID := query.UserID().Bytes()
	db := h.db.WithContext(ctx)

	var totals struct {
		Orders int
		Spent  decimal.Decimal
	}
	if err := db.Raw(`
		SELECT COUNT(*) AS orders, COALESCE(SUM(total), 0) AS spent
		FROM orders
		WHERE user_id = ? AND is_active = true AND created_at >= ? AND created_at <= ?
	`, userID, from, now).Scan(&totals).Error; err != nil {
		return OrderStatistics{}, err
	}

	stats := OrderStatistics{
		TotalOrders:     totals.Orders,
		TotalSpent:      totals.Spent.InexactFloat64(),
		StatusBreakdown: make(map[string]int),
		TopRetailers:    make([]TopRetailer, 0, TopRetailersLimit),
	}
	if spent, err := kernel.NewMoney(totals.Spent); err == nil {
		stats.AverageOrderValue = spent.Divide(totals.Orders).Float64()
	}

	var breakdown []struct {
		Status string
		Count  int
	}
	if err := db.Raw(`
		SELECT status, COUNT(*) AS count
		FROM orders
		WHERE user_id = ? AND is_active = true AND created_at >= ? AND created_at <= ?
		GROUP BY status
	`, userID, from, now).Scan(&breakdown).Error; err != nil {
		return OrderStatistics{}, err
	}
	for _, b := range breakdown {
		stats.StatusBreakdown[b.Status] = b.Count
	}

	var top []struct {
		Name       string
		OrderCount int
		TotalSpent decimal.Decimal
	}
	if err := db.Raw(`
		SELECT r.name, COUNT(*) AS order_count, SUM(o.total) AS total_spent
		FROM orders o
		JOIN retailers r ON r.id = o.retailer_id
		WHERE o.user_id = ? AND o.is_active = true AND o.created_at >= ? AND o.created_at <= ?
		GROUP BY r.id, r.name
		ORDER BY total_spent DESC, r.name
		LIMIT ?
	`, userID, from, now, TopRetailersLimit).Scan(&top).Error; err != nil {
		return OrderStatistics{}, err
	}
	for _, t := range top {
		stats.TopRetailers = append(stats.TopRetailers, TopRetailer{
			Name:       t.Name,
			OrderCount: t.OrderCount,
			TotalSpent: t.TotalSpent.InexactFloat64(),
		})
	}

	return stats, nil
}
