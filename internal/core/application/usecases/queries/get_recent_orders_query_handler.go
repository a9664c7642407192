package queries

import (
	"context"
	"time"

	"b2better/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetRecentOrdersQueryHandler struct {
	db        *gorm.DB
	formatter services.AmountFormatter
}

func NewGetRecentOrdersQueryHandler(db *gorm.DB) GetRecentOrdersQueryHandler {
	return GetRecentOrdersQueryHandler{db: db, formatter: services.NewAmountFormatter()}
}

func (h GetRecentOrdersQueryHandler) Handle(ctx context.Context, query GetRecentOrdersQuery) ([]RecentOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.order_number, r.name, o.total, o.status, o.created_at
		FROM orders o
		JOIN retailers r ON r.id = o.retailer_id
		WHERE o.user_id = ? AND o.is_active = true
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ?
	`, query.UserID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]RecentOrder, 0, query.Limit())
	for rows.Next() {
		var (
			recent    RecentOrder
			amount    decimal.Decimal
			createdAt time.Time
		)
		if err = rows.Scan(&recent.ID, &recent.Supplier, &amount, &recent.Status, &createdAt); err != nil {
			return nil, err
		}
		recent.Amount = formatCurrency(h.formatter, amount)
		recent.Date = isoDate(createdAt)
		orders = append(orders, recent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
