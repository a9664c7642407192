// Package retailer provides the Retailer entity: a supplier that fulfils orders.
//
// Retailers are maintained by the retailer directory. The order service reads
// them to validate checkout and to denormalize name, category and location into
// order listings, and keeps their order statistics up to date.
package retailer

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrRetailerIsNotConstructed = errors.New("Retailer must be created via NewRetailer constructor")

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

// Category is the market segment a retailer serves.
type Category string

const (
	Electronics    Category = "Electronics"
	OfficeSupplies Category = "Office Supplies"
	Industrial     Category = "Industrial"
	Sustainability Category = "Sustainability"
	Fashion        Category = "Fashion"
	HomeAndGarden  Category = "Home & Garden"
	Sports         Category = "Sports"
)

// ParseCategory validates raw input.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case Electronics, OfficeSupplies, Industrial, Sustainability, Fashion, HomeAndGarden, Sports:
		return c, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
	}
}

// Location is where a retailer operates from.
type Location struct {
	Address string
	City    string
	State   string
	Country string
	ZipCode string
}

// Display renders the "city, state" form used in order listings.
func (l Location) Display() string {
	return l.City + ", " + l.State
}

// Contact holds the retailer's public contact details.
type Contact struct {
	Email   string
	Phone   string
	Website string
}

// Stats aggregates a retailer's active orders. It is recomputed periodically.
type Stats struct {
	TotalOrders   int
	TotalRevenue  kernel.Money
	CustomerCount int
	LastOrderDate *time.Time
}

// Retailer is a supplier in the marketplace directory.
type Retailer struct {
	id          kernel.UUID
	name        string
	description string
	category    Category
	specialties []string
	location    Location
	contact     Contact
	verified    bool
	isActive    bool
	stats       Stats

	guard guard.ConstructorGuard
}

// NewRetailer creates an active, unverified retailer with empty statistics.
func NewRetailer(
	id kernel.UUID,
	name string,
	description string,
	category Category,
	location Location,
	contact Contact,
	specialties []string,
) (*Retailer, error) {
	r := &Retailer{
		location:    location,
		contact:     contact,
		specialties: append([]string(nil), specialties...),
		isActive:    true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setDescription(description),
		r.setCategory(category),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRetailer rebuilds a retailer loaded from storage.
func RestoreRetailer(
	id kernel.UUID,
	name string,
	description string,
	category Category,
	location Location,
	contact Contact,
	specialties []string,
	verified bool,
	isActive bool,
	stats Stats,
) (*Retailer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Retailer{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		location:    location,
		contact:     contact,
		specialties: append([]string(nil), specialties...),
		verified:    verified,
		isActive:    isActive,
		stats:       stats,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (r *Retailer) Validate() error {
	if r == nil {
		return ErrRetailerIsNotConstructed
	}
	return r.guard.Validate(ErrRetailerIsNotConstructed)
}

func (r *Retailer) ID() kernel.UUID { return r.id }
func (r *Retailer) Name() string { return r.name }
func (r *Retailer) Description() string { return r.description }
func (r *Retailer) Category() Category { return r.category }
func (r *Retailer) Location() Location { return r.location }
func (r *Retailer) Contact() Contact { return r.contact }
func (r *Retailer) IsVerified() bool { return r.verified }
func (r *Retailer) IsActive() bool { return r.isActive }
func (r *Retailer) Stats() Stats { return r.stats }
func (r *Retailer) Specialties() []string {
	return append([]string(nil), r.specialties...)
}

// CanAcceptOrders reports whether checkout may target this retailer.
func (r *Retailer) CanAcceptOrders() bool {
	return r.isActive
}

// Deactivate hides the retailer from checkout.
func (r *Retailer) Deactivate() {
	r.isActive = false
}

// UpdateStats replaces the order statistics.
func (r *Retailer) UpdateStats(stats Stats) error {
	if stats.TotalOrders < 0 || stats.CustomerCount < 0 {
		return errs.NewValueIsOutOfRangeError("stats", fmt.Sprintf("%+v", stats), 0, "unbounded")
	}
	r.stats = stats
	return nil
}

func (r *Retailer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Retailer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, maxNameLength)
	}
	r.name = name
	return nil
}

func (r *Retailer) setDescription(description string) error {
	if n := utf8.RuneCountInString(description); n > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, maxDescriptionLength)
	}
	r.description = description
	return nil
}

func (r *Retailer) setCategory(category Category) error {
	c, err := ParseCategory(string(category))
	if err != nil {
		return err
	}
	r.category = c
	return nil
}
