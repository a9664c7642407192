package postgres

import (
	"b2better/internal/adapters/out/postgres/orderrepo"
	"b2better/internal/adapters/out/postgres/retailerrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the retailers, orders, order_items and
// order_timeline tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&retailerrepo.RetailerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.TimelineEntryDTO{},
	)
}
