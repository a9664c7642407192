package queries

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"b2better/internal/core/domain/model/retailer"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrListRetailersQueryIsNotConstructed = errors.New(
	"ListRetailersQuery must be created via NewListRetailersQuery constructor",
)

const (
	DefaultRetailersLimit = 12
	DefaultRetailerSort   = "orders"
	// CategoryAll disables the category filter.
	CategoryAll     = "all"
	maxSearchLength = 100
)

// retailerOrderings maps the public sort keys to ORDER BY clauses.
var retailerOrderings = map[string]string{
	"orders": "r.stats_total_orders DESC, r.name ASC",
	"name":   "r.name ASC",
	"newest": "r.created_at DESC",
}

// ListRetailersQuery pages through the active retailer directory.
type ListRetailersQuery struct { //nolint:recvcheck //using for validation
	category     retailer.Category
	search       string
	verifiedOnly bool
	sortBy       string
	page         int
	limit        int

	guard guard.ConstructorGuard
}

// NewListRetailersQuery accepts an empty or "all" category and an empty search
// to list the whole directory. An empty sortBy ranks by total orders.
func NewListRetailersQuery(
	category string,
	search string,
	verifiedOnly bool,
	sortBy string,
	page int,
	limit int,
) (ListRetailersQuery, error) {
	q := ListRetailersQuery{verifiedOnly: verifiedOnly, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setCategory(category),
		q.setSearch(search),
		q.setSortBy(sortBy),
		validatePage(page),
		validateLimit(limit, MaxPageLimit),
	); err != nil {
		return ListRetailersQuery{}, err
	}

	q.page = page
	q.limit = limit
	return q, nil
}

func (q ListRetailersQuery) Validate() error {
	return q.guard.Validate(ErrListRetailersQueryIsNotConstructed)
}

// Category is empty when no category filter applies.
func (q ListRetailersQuery) Category() retailer.Category { return q.category }
func (q ListRetailersQuery) Search() string { return q.search }
func (q ListRetailersQuery) VerifiedOnly() bool { return q.verifiedOnly }
func (q ListRetailersQuery) SortBy() string { return q.sortBy }
func (q ListRetailersQuery) Page() int { return q.page }
func (q ListRetailersQuery) Limit() int { return q.limit }

func (q *ListRetailersQuery) setCategory(category string) error {
	if category == "" || category == CategoryAll {
		return nil
	}
	parsed, err := retailer.ParseCategory(category)
	if err != nil {
		return err
	}
	q.category = parsed
	return nil
}

func (q *ListRetailersQuery) setSearch(search string) error {
	search = strings.TrimSpace(search)
	if n := utf8.RuneCountInString(search); n > maxSearchLength {
		return errs.NewValueIsOutOfRangeError("search length", n, 0, maxSearchLength)
	}
	q.search = search
	return nil
}

func (q *ListRetailersQuery) setSortBy(sortBy string) error {
	if sortBy == "" {
		sortBy = DefaultRetailerSort
	}
	if _, ok := retailerOrderings[sortBy]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sortBy", fmt.Errorf("%q is not sortable", sortBy))
	}
	q.sortBy = sortBy
	return nil
}

// RetailerListing is one card of the retailer directory.
type RetailerListing struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Verified    bool     `json:"verified"`
	Specialties []string `json:"specialties"`
	Description string   `json:"description"`
	TotalOrders int      `json:"totalOrders"`
}

type ListRetailersQueryResponse struct {
	Retailers  []RetailerListing
	Pagination Pagination
}
