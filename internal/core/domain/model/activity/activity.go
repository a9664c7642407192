// Package activity provides the Activity entity: an immutable audit record of a
// notable account or order event, shown to the user in their activity feed.
package activity

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

const (
	MaxActionLength  = 100
	MaxDetailsLength = 500
)

var ErrActivityIsNotConstructed = errors.New("Activity must be created via NewActivity constructor")

// Type is the closed set of recorded event kinds.
type Type string

const (
	Login           Type = "login"
	Logout          Type = "logout"
	ProfileUpdate   Type = "profile_update"
	OrderPlaced     Type = "order_placed"
	OrderUpdated    Type = "order_updated"
	OrderCancelled  Type = "order_cancelled"
	SupplierAdded   Type = "supplier_added"
	SupplierRemoved Type = "supplier_removed"
	ProductViewed   Type = "product_viewed"
	ProductReviewed Type = "product_reviewed"
	SettingsUpdated Type = "settings_updated"
	PasswordChanged Type = "password_changed"
	EmailVerified   Type = "email_verified"
	AccountCreated  Type = "account_created"
)

// Types lists every activity type.
func Types() []Type {
	return []Type{
		Login, Logout, ProfileUpdate, OrderPlaced, OrderUpdated, OrderCancelled,
		SupplierAdded, SupplierRemoved, ProductViewed, ProductReviewed,
		SettingsUpdated, PasswordChanged, EmailVerified, AccountCreated,
	}
}

// ParseType validates raw input.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid activity type", s))
}

// EntityType is the kind of entity an activity refers to.
type EntityType string

const (
	EntityOrder    EntityType = "order"
	EntityRetailer EntityType = "retailer"
	EntityProduct  EntityType = "product"
	EntityUser     EntityType = "user"
)

// ParseEntityType validates raw input.
func ParseEntityType(s string) (EntityType, error) {
	switch t := EntityType(s); t {
	case EntityOrder, EntityRetailer, EntityProduct, EntityUser:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("relatedEntity.type", fmt.Errorf("%q is not a valid entity type", s))
	}
}

// RelatedEntity points at the entity an activity is about.
type RelatedEntity struct {
	Type EntityType
	ID   kernel.UUID
}

// Metadata describes the client that triggered the activity.
type Metadata struct {
	IPAddress string
	UserAgent string
	Device    string
	Browser   string
	OS        string
}

// Activity is an immutable audit record.
type Activity struct {
	id           kernel.UUID
	userID       kernel.UUID
	activityType Type
	action       string
	details      string
	metadata     Metadata
	related      *RelatedEntity
	isVisible    bool
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewActivity validates and creates a visible activity.
//
// The action is required and limited to MaxActionLength characters; details
// are optional and limited to MaxDetailsLength characters.
func NewActivity(
	id kernel.UUID,
	userID kernel.UUID,
	activityType Type,
	action string,
	details string,
	metadata Metadata,
	related *RelatedEntity,
	now time.Time,
) (*Activity, error) {
	a := &Activity{
		metadata:  metadata,
		isVisible: true,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setType(activityType),
		a.setAction(action),
		a.setDetails(details),
		a.setRelated(related),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreActivity rebuilds a stored activity.
func RestoreActivity(
	id kernel.UUID,
	userID kernel.UUID,
	activityType Type,
	action string,
	details string,
	metadata Metadata,
	related *RelatedEntity,
	isVisible bool,
	createdAt time.Time,
) (*Activity, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return &Activity{
		id:           id,
		userID:       userID,
		activityType: activityType,
		action:       action,
		details:      details,
		metadata:     metadata,
		related:      related,
		isVisible:    isVisible,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (a *Activity) Validate() error {
	if a == nil {
		return ErrActivityIsNotConstructed
	}
	return a.guard.Validate(ErrActivityIsNotConstructed)
}

func (a *Activity) ID() kernel.UUID { return a.id }
func (a *Activity) UserID() kernel.UUID { return a.userID }
func (a *Activity) Type() Type { return a.activityType }
func (a *Activity) Action() string { return a.action }
func (a *Activity) Details() string { return a.details }
func (a *Activity) Metadata() Metadata { return a.metadata }
func (a *Activity) IsVisible() bool { return a.isVisible }
func (a *Activity) CreatedAt() time.Time { return a.createdAt }

// RelatedEntity returns nil when the activity is not about a specific entity.
func (a *Activity) RelatedEntity() *RelatedEntity {
	if a.related == nil {
		return nil
	}
	related := *a.related
	return &related
}

func (a *Activity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Activity) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	a.userID = userID
	return nil
}

func (a *Activity) setType(activityType Type) error {
	t, err := ParseType(string(activityType))
	if err != nil {
		return err
	}
	a.activityType = t
	return nil
}

func (a *Activity) setAction(action string) error {
	action = strings.TrimSpace(action)
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	if n := utf8.RuneCountInString(action); n > MaxActionLength {
		return errs.NewValueIsOutOfRangeError("action length", n, 1, MaxActionLength)
	}
	a.action = action
	return nil
}

func (a *Activity) setDetails(details string) error {
	if n := utf8.RuneCountInString(details); n > MaxDetailsLength {
		return errs.NewValueIsOutOfRangeError("details length", n, 0, MaxDetailsLength)
	}
	a.details = details
	return nil
}

func (a *Activity) setRelated(related *RelatedEntity) error {
	if related == nil {
		return nil
	}
	if _, err := ParseEntityType(string(related.Type)); err != nil {
		return err
	}
	if err := related.ID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("relatedEntity.id", err)
	}
	r := *related
	a.related = &r
	return nil
}
