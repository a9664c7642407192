package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRetailerCategoriesQueryHandler returns the distinct categories of active
// retailers in alphabetical order, for directory filters.
type ListRetailerCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewListRetailerCategoriesQueryHandler(db *gorm.DB) ListRetailerCategoriesQueryHandler {
	return ListRetailerCategoriesQueryHandler{db: db}
}

func (h ListRetailerCategoriesQueryHandler) Handle(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	if err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT category
		FROM retailers
		WHERE is_active = true
		ORDER BY category
	`).Scan(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
