package queries

import (
	"context"
	"time"

	"b2better/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetRetailerProfileQueryHandler reads one retailer. Inactive retailers are
// reported as missing.
type GetRetailerProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetRetailerProfileQueryHandler(db *gorm.DB) GetRetailerProfileQueryHandler {
	return GetRetailerProfileQueryHandler{db: db}
}

type retailerProfileRow struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Category           string
	Specialties        datatypes.JSONSlice[string]
	LocationAddress    string
	LocationCity       string
	LocationState      string
	LocationCountry    string
	LocationZipCode    string
	ContactEmail       string
	ContactPhone       string
	ContactWebsite     string
	Verified           bool
	StatsTotalOrders   int
	StatsTotalRevenue  decimal.Decimal
	StatsCustomerCount int
	StatsLastOrderDate *time.Time
}

func (h GetRetailerProfileQueryHandler) Handle(ctx context.Context, query GetRetailerProfileQuery) (RetailerProfile, error) {
	if err := query.Validate(); err != nil {
		return RetailerProfile{}, err
	}

	var rows []retailerProfileRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, name, description, category, specialties,
			location_address, location_city, location_state, location_country, location_zip_code,
			contact_email, contact_phone, contact_website, verified,
			stats_total_orders, stats_total_revenue, stats_customer_count, stats_last_order_date
		FROM retailers
		WHERE id = ? AND is_active = true
	`, query.RetailerID().Bytes()).Scan(&rows).Error; err != nil {
		return RetailerProfile{}, err
	}
	if len(rows) == 0 {
		return RetailerProfile{}, errs.NewObjectNotFoundError("retailer", query.RetailerID())
	}
	row := rows[0]

	specialties := []string(row.Specialties)
	if specialties == nil {
		specialties = []string{}
	}

	var lastOrder *time.Time
	if row.StatsLastOrderDate != nil {
		t := row.StatsLastOrderDate.UTC()
		lastOrder = &t
	}

	return RetailerProfile{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		Specialties: specialties,
		Location: RetailerLocationView{
			Address: row.LocationAddress,
			City:    row.LocationCity,
			State:   row.LocationState,
			Country: row.LocationCountry,
			ZipCode: row.LocationZipCode,
		},
		Contact: RetailerContactView{
			Email:   row.ContactEmail,
			Phone:   row.ContactPhone,
			Website: row.ContactWebsite,
		},
		Verified: row.Verified,
		Stats: RetailerStatsView{
			TotalOrders:   row.StatsTotalOrders,
			TotalRevenue:  row.StatsTotalRevenue.InexactFloat64(),
			CustomerCount: row.StatsCustomerCount,
			LastOrderDate: lastOrder,
		},
	}, nil
}
