// Package queries contains read-only operations. Order reports and the retailer
// directory are answered with SQL through GORM; activities and recommendations
// go through their ports.
package queries

import (
	"b2better/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	MaxPage      = 1_000_000
	MaxPageLimit = 100
)

// Pagination describes a 1-indexed page of a larger result.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

func newPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Current: page, Pages: pages, Total: total, Limit: limit}
}

func offset(page, limit int) int {
	return (page - 1) * limit
}

func validatePage(page int) error {
	if page < 1 || page > MaxPage {
		return errs.NewValueIsOutOfRangeError("page", page, 1, MaxPage)
	}
	return nil
}

func validateLimit(limit, maxLimit int) error {
	if limit < 1 || limit > maxLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxLimit)
	}
	return nil
}
