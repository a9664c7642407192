package orderrepo

import (
	"context"
	"errors"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/model/retailer"
	"b2better/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its items and initial timeline.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row guarded by its version and appends the timeline
// entries that are not stored yet. Items never change after placement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.Number().String())
	}

	var stored int64
	if err := r.db.WithContext(ctx).
		Model(&TimelineEntryDTO{}).
		Where("order_id = ?", dto.ID).
		Count(&stored).Error; err != nil {
		return err
	}
	if int(stored) < len(dto.Timeline) {
		pending := dto.Timeline[stored:]
		if err := r.db.WithContext(ctx).Create(&pending).Error; err != nil {
			return err
		}
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves an active order owned by userID.
func (r *GormOrderRepository) GetByNumber(
	ctx context.Context,
	number order.Number,
	userID kernel.UUID,
) (*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("order_number = ? AND user_id = ? AND is_active = ?", number.String(), userID.Bytes(), true).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

type retailerSummaryRow struct {
	RetailerID    uuid.UUID
	TotalOrders   int
	TotalRevenue  decimal.Decimal
	CustomerCount int
	LastOrderDate *time.Time
}

// SummarizeByRetailer groups active orders per retailer.
func (r *GormOrderRepository) SummarizeByRetailer(ctx context.Context) (map[kernel.UUID]retailer.Stats, error) {
	var rows []retailerSummaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT retailer_id,
		       COUNT(*) AS total_orders,
		       COALESCE(SUM(total), 0) AS total_revenue,
		       COUNT(DISTINCT user_id) AS customer_count,
		       MAX(created_at) AS last_order_date
		FROM orders
		WHERE is_active = true
		GROUP BY retailer_id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make(map[kernel.UUID]retailer.Stats, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.RetailerID[:])
		if err != nil {
			return nil, err
		}
		revenue, err := kernel.NewMoney(row.TotalRevenue)
		if err != nil {
			return nil, err
		}
		summaries[id] = retailer.Stats{
			TotalOrders:   row.TotalOrders,
			TotalRevenue:  revenue,
			CustomerCount: row.CustomerCount,
			LastOrderDate: row.LastOrderDate,
		}
	}

	return summaries, nil
}
