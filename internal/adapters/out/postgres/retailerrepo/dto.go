// Package retailerrepo persists the retailer directory. Location, contact and
// order statistics are embedded columns of the retailers table; specialties are
// stored as a JSON array.
package retailerrepo

import (
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/retailer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RetailerDTO represents the database structure for persisting retailers.
type RetailerDTO struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name        string                      `gorm:"type:varchar(100);not null;index"`
	Description string                      `gorm:"type:varchar(1000)"`
	Category    string                      `gorm:"type:varchar(50);not null;index"`
	Specialties datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Location    LocationDTO                 `gorm:"embedded;embeddedPrefix:location_"`
	Contact     ContactDTO                  `gorm:"embedded;embeddedPrefix:contact_"`
	Verified    bool                        `gorm:"not null"`
	IsActive    bool                        `gorm:"not null"`
	Stats       StatsDTO                    `gorm:"embedded;embeddedPrefix:stats_"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default "retailer_dtos".
func (RetailerDTO) TableName() string {
	return "retailers"
}

type LocationDTO struct {
	Address string `gorm:"type:varchar(200)"`
	City    string `gorm:"type:varchar(100);not null"`
	State   string `gorm:"type:varchar(100);not null"`
	Country string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(20)"`
}

type ContactDTO struct {
	Email   string `gorm:"type:varchar(200)"`
	Phone   string `gorm:"type:varchar(50)"`
	Website string `gorm:"type:varchar(200)"`
}

type StatsDTO struct {
	TotalOrders   int             `gorm:"not null"`
	TotalRevenue  decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	CustomerCount int             `gorm:"not null"`
	LastOrderDate *time.Time
}

func fromDomain(r *retailer.Retailer) RetailerDTO {
	location := r.Location()
	contact := r.Contact()
	stats := r.Stats()

	return RetailerDTO{
		ID:          r.ID().Bytes(),
		Name:        r.Name(),
		Description: r.Description(),
		Category:    string(r.Category()),
		Specialties: datatypes.NewJSONSlice(r.Specialties()),
		Location: LocationDTO{
			Address: location.Address,
			City:    location.City,
			State:   location.State,
			Country: location.Country,
			ZipCode: location.ZipCode,
		},
		Contact: ContactDTO{
			Email:   contact.Email,
			Phone:   contact.Phone,
			Website: contact.Website,
		},
		Verified: r.IsVerified(),
		IsActive: r.IsActive(),
		Stats: StatsDTO{
			TotalOrders:   stats.TotalOrders,
			TotalRevenue:  stats.TotalRevenue.Amount(),
			CustomerCount: stats.CustomerCount,
			LastOrderDate: stats.LastOrderDate,
		},
	}
}

func toDomain(dto RetailerDTO) (*retailer.Retailer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	revenue, err := kernel.NewMoney(dto.Stats.TotalRevenue)
	if err != nil {
		return nil, err
	}

	return retailer.RestoreRetailer(
		id,
		dto.Name,
		dto.Description,
		retailer.Category(dto.Category),
		retailer.Location{
			Address: dto.Location.Address,
			City:    dto.Location.City,
			State:   dto.Location.State,
			Country: dto.Location.Country,
			ZipCode: dto.Location.ZipCode,
		},
		retailer.Contact{
			Email:   dto.Contact.Email,
			Phone:   dto.Contact.Phone,
			Website: dto.Contact.Website,
		},
		[]string(dto.Specialties),
		dto.Verified,
		dto.IsActive,
		retailer.Stats{
			TotalOrders:   dto.Stats.TotalOrders,
			TotalRevenue:  revenue,
			CustomerCount: dto.Stats.CustomerCount,
			LastOrderDate: dto.Stats.LastOrderDate,
		},
	)
}
