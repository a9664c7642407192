package queries

import (
	"errors"
	"fmt"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	DefaultOrdersLimit = 10
	DefaultSortBy      = "createdAt"
	DefaultSortOrder   = "desc"
	// StatusAll disables the status filter.
	StatusAll = "all"
)

// sortColumns maps the public sort keys to order columns.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"orderNumber": "order_number",
	"status":      "status",
	"total":       "total",
}

// ListOrdersQuery selects a page of the user's active orders.
//
// Example:
//
//	query, err := NewListOrdersQuery(userID, "shipped", 2, 10, "total", "asc")
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	status    order.Status
	page      int
	limit     int
	sortBy    string
	sortOrder string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the filter. An empty or "all" status disables
// status filtering; empty sort values fall back to createdAt desc.
func NewListOrdersQuery(
	userID kernel.UUID,
	status string,
	page int,
	limit int,
	sortBy string,
	sortOrder string,
) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setUserID(userID),
		q.setStatus(status),
		q.setPage(page),
		q.setLimit(limit),
		q.setSort(sortBy, sortOrder),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) UserID() kernel.UUID { return q.userID }

// Status is empty when no status filter applies.
func (q ListOrdersQuery) Status() order.Status { return q.status }
func (q ListOrdersQuery) Page() int { return q.page }
func (q ListOrdersQuery) Limit() int { return q.limit }
func (q ListOrdersQuery) SortBy() string { return q.sortBy }
func (q ListOrdersQuery) SortOrder() string { return q.sortOrder }

func (q *ListOrdersQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	q.userID = userID
	return nil
}

func (q *ListOrdersQuery) setStatus(status string) error {
	if status == "" || status == StatusAll {
		return nil
	}
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	q.status = parsed
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if err := validatePage(page); err != nil {
		return err
	}
	q.page = page
	return nil
}

func (q *ListOrdersQuery) setLimit(limit int) error {
	if err := validateLimit(limit, MaxPageLimit); err != nil {
		return err
	}
	q.limit = limit
	return nil
}

func (q *ListOrdersQuery) setSort(sortBy, sortOrder string) error {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if sortOrder == "" {
		sortOrder = DefaultSortOrder
	}

	var sortErrs []error
	if _, ok := sortColumns[sortBy]; !ok {
		sortErrs = append(sortErrs, errs.NewValueIsInvalidErrorWithCause("sortBy",
			fmt.Errorf("%q is not sortable", sortBy)))
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortErrs = append(sortErrs, errs.NewValueIsInvalidErrorWithCause("sortOrder",
			fmt.Errorf("%q must be asc or desc", sortOrder)))
	}
	if err := errors.Join(sortErrs...); err != nil {
		return err
	}

	q.sortBy = sortBy
	q.sortOrder = sortOrder
	return nil
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID        string          `json:"id"`
	Supplier  string          `json:"supplier"`
	Amount    string          `json:"amount"`
	Status    string          `json:"status"`
	Date      string          `json:"date"`
	ItemCount int             `json:"itemCount"`
	Retailer  RetailerSummary `json:"retailer"`
}

// RetailerSummary is the denormalized retailer shown next to an order.
type RetailerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
}

type ListOrdersQueryResponse struct {
	Orders     []OrderSummary
	Pagination Pagination
}
