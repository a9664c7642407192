package queries

import (
	"errors"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery loads one active order of the user by its number.
type GetOrderDetailQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	number order.Number

	guard guard.ConstructorGuard
}

func NewGetOrderDetailQuery(userID kernel.UUID, number string) (GetOrderDetailQuery, error) {
	q := GetOrderDetailQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(q.setUserID(userID), q.setNumber(number)); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return q, nil
}

func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) UserID() kernel.UUID { return q.userID }
func (q GetOrderDetailQuery) Number() order.Number { return q.number }

func (q *GetOrderDetailQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	q.userID = userID
	return nil
}

func (q *GetOrderDetailQuery) setNumber(number string) error {
	parsed, err := order.ParseNumber(number)
	if err != nil {
		return err
	}
	q.number = parsed
	return nil
}

// OrderDetail is the full view of an order.
type OrderDetail struct {
	OrderNumber string           `json:"orderNumber"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Items       []OrderItemView  `json:"items"`
	Pricing     PricingView      `json:"pricing"`
	Shipping    ShippingView     `json:"shipping"`
	Payment     PaymentView      `json:"payment"`
	Notes       NotesView        `json:"notes"`
	Timeline    []TimelineView   `json:"timeline"`
	Retailer    RetailerContacts `json:"retailer"`
}

type ProductView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SKU         string `json:"sku"`
}

type OrderItemView struct {
	Product    ProductView `json:"product"`
	Quantity   int         `json:"quantity"`
	UnitPrice  float64     `json:"unitPrice"`
	TotalPrice float64     `json:"totalPrice"`
}

type PricingView struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type AddressView struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type ShippingView struct {
	Address           AddressView `json:"address"`
	Method            string      `json:"method"`
	TrackingNumber    string      `json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time  `json:"actualDelivery,omitempty"`
}

type PaymentView struct {
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

type NotesView struct {
	Customer string `json:"customer"`
	Internal string `json:"internal"`
}

type TimelineView struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
	UpdatedBy string    `json:"updatedBy"`
}

// RetailerContacts is the retailer block of an order detail.
type RetailerContacts struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}
