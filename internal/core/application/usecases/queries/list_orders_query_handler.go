package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists a user's active orders joined with their retailer.
// Sorting is applied to an allowlisted column with the order id as tie-breaker,
// so pages are stable.
type ListOrdersQueryHandler struct {
	db        *gorm.DB
	formatter services.AmountFormatter
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, formatter: services.NewAmountFormatter()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "o.user_id = ? AND o.is_active = true"
	args := []any{query.UserID().Bytes()}
	if query.Status() != "" {
		where += " AND o.status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders o WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orderBy := fmt.Sprintf("o.%s %s, o.id %s",
		pq.QuoteIdentifier(sortColumns[query.SortBy()]),
		strings.ToUpper(query.SortOrder()),
		strings.ToUpper(query.SortOrder()),
	)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_number,
			o.total,
			o.status,
			o.created_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			r.id,
			r.name,
			r.category,
			r.location_city,
			r.location_state
		FROM orders o
		JOIN retailers r ON r.id = o.retailer_id
		WHERE `+where+`
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset(query.Page(), query.Limit()))...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0, query.Limit())
	for rows.Next() {
		var (
			summary     OrderSummary
			amount      decimal.Decimal
			createdAt   time.Time
			retailerID  uuid.UUID
			city, state string
		)

		if err = rows.Scan(
			&summary.ID,
			&amount,
			&summary.Status,
			&createdAt,
			&summary.ItemCount,
			&retailerID,
			&summary.Retailer.Name,
			&summary.Retailer.Category,
			&city,
			&state,
		); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		summary.Supplier = summary.Retailer.Name
		summary.Amount = formatCurrency(h.formatter, amount)
		summary.Date = isoDate(createdAt)
		summary.Retailer.ID = retailerID.String()
		summary.Retailer.Location = city + ", " + state
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:     orders,
		Pagination: newPagination(query.Page(), query.Limit(), total),
	}, nil
}

func formatCurrency(formatter services.AmountFormatter, amount decimal.Decimal) string {
	m, err := kernel.NewMoney(amount)
	if err != nil {
		return "$" + amount.String()
	}
	return formatter.Currency(m)
}

func isoDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
