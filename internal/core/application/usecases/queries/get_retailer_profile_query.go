package queries

import (
	"errors"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrGetRetailerProfileQueryIsNotConstructed = errors.New(
	"GetRetailerProfileQuery must be created via NewGetRetailerProfileQuery constructor",
)

// GetRetailerProfileQuery loads the public profile of one active retailer.
type GetRetailerProfileQuery struct {
	retailerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRetailerProfileQuery(retailerID string) (GetRetailerProfileQuery, error) {
	id, err := kernel.UUIDFromString(retailerID)
	if err != nil {
		return GetRetailerProfileQuery{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err = id.Validate(); err != nil {
		return GetRetailerProfileQuery{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return GetRetailerProfileQuery{retailerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRetailerProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetRetailerProfileQueryIsNotConstructed)
}

func (q GetRetailerProfileQuery) RetailerID() kernel.UUID { return q.retailerID }

// RetailerProfile is the public view of a retailer.
type RetailerProfile struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Specialties []string             `json:"specialties"`
	Location    RetailerLocationView `json:"location"`
	Contact     RetailerContactView  `json:"contact"`
	Verified    bool                 `json:"verified"`
	Stats       RetailerStatsView    `json:"stats"`
}

type RetailerLocationView struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

type RetailerContactView struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

type RetailerStatsView struct {
	TotalOrders   int        `json:"totalOrders"`
	TotalRevenue  float64    `json:"totalRevenue"`
	CustomerCount int        `json:"customerCount"`
	LastOrderDate *time.Time `json:"lastOrderDate,omitempty"`
}
