package retailerrepo

import (
	"context"
	"errors"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/retailer"
	"b2better/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRetailerRepository implements RetailerRepository using GORM.
type GormRetailerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRetailerRepository(db *gorm.DB, tracker aggregateTracker) *GormRetailerRepository {
	return &GormRetailerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new retailer.
func (r *GormRetailerRepository) Add(ctx context.Context, aggregate *retailer.Retailer) error {
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

// Update overwrites every column except the identity and creation time.
func (r *GormRetailerRepository) Update(ctx context.Context, aggregate *retailer.Retailer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RetailerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("retailer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a retailer by ID regardless of its activity flag.
func (r *GormRetailerRepository) Get(ctx context.Context, id kernel.UUID) (*retailer.Retailer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RetailerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("retailer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every retailer ordered by name.
func (r *GormRetailerRepository) GetAll(ctx context.Context) ([]*retailer.Retailer, error) {
	var dtos []RetailerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	retailers := make([]*retailer.Retailer, 0, len(dtos))
	for _, dto := range dtos {
		ret, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		retailers = append(retailers, ret)
	}

	return retailers, nil
}
