package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListRetailersQueryHandler answers directory searches over active retailers.
// The retailer id breaks ties so pages are stable.
type ListRetailersQueryHandler struct {
	db *gorm.DB
}

func NewListRetailersQueryHandler(db *gorm.DB) ListRetailersQueryHandler {
	return ListRetailersQueryHandler{db: db}
}

type retailerListingRow struct {
	ID               uuid.UUID
	Name             string
	Category         string
	LocationCity     string
	LocationState    string
	Verified         bool
	Specialties      datatypes.JSONSlice[string]
	Description      string
	StatsTotalOrders int
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (h ListRetailersQueryHandler) Handle(ctx context.Context, query ListRetailersQuery) (ListRetailersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListRetailersQueryResponse{}, err
	}

	where := "r.is_active = true"
	var args []any
	if query.Category() != "" {
		where += " AND r.category = ?"
		args = append(args, string(query.Category()))
	}
	if query.Search() != "" {
		pattern := "%" + likeEscaper.Replace(query.Search()) + "%"
		where += ` AND (r.name ILIKE ? OR r.description ILIKE ?)`
		args = append(args, pattern, pattern)
	}
	if query.VerifiedOnly() {
		where += " AND r.verified = true"
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM retailers r WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListRetailersQueryResponse{}, err
	}

	var rows []retailerListingRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id, r.name, r.category, r.location_city, r.location_state,
			r.verified, r.specialties, r.description, r.stats_total_orders
		FROM retailers r
		WHERE `+where+`
		ORDER BY `+retailerOrderings[query.SortBy()]+`, r.id
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset(query.Page(), query.Limit()))...).Scan(&rows).Error; err != nil {
		return ListRetailersQueryResponse{}, err
	}

	retailers := make([]RetailerListing, 0, len(rows))
	for _, row := range rows {
		specialties := []string(row.Specialties)
		if specialties == nil {
			specialties = []string{}
		}
		retailers = append(retailers, RetailerListing{
			ID:          row.ID.String(),
			Name:        row.Name,
			Category:    row.Category,
			Location:    row.LocationCity + ", " + row.LocationState,
			Verified:    row.Verified,
			Specialties: specialties,
			Description: row.Description,
			TotalOrders: row.StatsTotalOrders,
		})
	}

	return ListRetailersQueryResponse{
		Retailers:  retailers,
		Pagination: newPagination(query.Page(), query.Limit(), total),
	}, nil
}
