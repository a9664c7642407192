package order

import (
	"errors"
	"strings"
	"time"

	"b2better/internal/pkg/errs"
)

// DefaultShippingMethod is used when the customer does not choose one.
const DefaultShippingMethod = "standard"

// Address is the recipient of an order. Company is the only optional field.
type Address struct {
	name    string
	company string
	street  string
	city    string
	state   string
	zipCode string
	country string
}

// NewAddress validates all required fields and reports every missing one.
func NewAddress(name, company, street, city, state, zipCode, country string) (Address, error) {
	required := func(field, value string) error {
		if strings.TrimSpace(value) == "" {
			return errs.NewValueIsRequiredError("shippingAddress." + field)
		}
		return nil
	}

	if err := errors.Join(
		required("name", name),
		required("street", street),
		required("city", city),
		required("state", state),
		required("zipCode", zipCode),
		required("country", country),
	); err != nil {
		return Address{}, err
	}

	return Address{
		name:    name,
		company: company,
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		country: country,
	}, nil
}

func (a Address) Name() string { return a.name }
func (a Address) Company() string { return a.company }
func (a Address) Street() string { return a.street }
func (a Address) City() string { return a.city }
func (a Address) State() string { return a.state }
func (a Address) ZipCode() string { return a.zipCode }
func (a Address) Country() string { return a.country }

// Shipping describes how and where an order is delivered.
type Shipping struct {
	address           Address
	method            string
	trackingNumber    string
	estimatedDelivery *time.Time
	actualDelivery    *time.Time
}

// NewShipping creates shipping details for a new order. An empty method
// falls back to DefaultShippingMethod.
func NewShipping(address Address, method string) (Shipping, error) {
	if address.name == "" {
		return Shipping{}, errs.NewValueIsRequiredError("shippingAddress")
	}
	if strings.TrimSpace(method) == "" {
		method = DefaultShippingMethod
	}
	return Shipping{address: address, method: method}, nil
}

// RestoreShipping rebuilds persisted shipping details without validation.
func RestoreShipping(
	address Address,
	method string,
	trackingNumber string,
	estimatedDelivery *time.Time,
	actualDelivery *time.Time,
) Shipping {
	return Shipping{
		address:           address,
		method:            method,
		trackingNumber:    trackingNumber,
		estimatedDelivery: estimatedDelivery,
		actualDelivery:    actualDelivery,
	}
}

// RestoreAddress rebuilds a persisted address without validation.
func RestoreAddress(name, company, street, city, state, zipCode, country string) Address {
	return Address{
		name:    name,
		company: company,
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		country: country,
	}
}

func (s Shipping) Address() Address { return s.address }
func (s Shipping) Method() string { return s.method }
func (s Shipping) TrackingNumber() string { return s.trackingNumber }
func (s Shipping) EstimatedDelivery() *time.Time { return s.estimatedDelivery }
func (s Shipping) ActualDelivery() *time.Time { return s.actualDelivery }
