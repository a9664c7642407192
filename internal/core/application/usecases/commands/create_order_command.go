package commands

import (
	"errors"
	"fmt"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"
	"b2better/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested line: a product snapshot, quantity and unit price.
type OrderItemInput struct {
	Name        string
	Description string
	Category    string
	SKU         string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// ShippingAddressInput is the delivery address as submitted at checkout.
type ShippingAddressInput struct {
	Name    string
	Company string
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// CreateOrderCommand represents a checkout: a user orders items from one retailer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, retailerID,
//	    []OrderItemInput{{Name: "Laser printer", Quantity: 2, UnitPrice: decimal.NewFromInt(60)}},
//	    address, "credit_card", "Deliver to loading dock", activity.Metadata{IPAddress: ip})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	retailerID    kernel.UUID
	items         []order.Item
	address       order.Address
	paymentMethod order.PaymentMethod
	notes         string
	metadata      activity.Metadata

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field and reports all problems at once.
// Item errors are reported per position, e.g. "items[1]".
func NewCreateOrderCommand(
	userID kernel.UUID,
	retailerID kernel.UUID,
	items []OrderItemInput,
	address ShippingAddressInput,
	paymentMethod string,
	notes string,
	metadata activity.Metadata,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes:    notes,
		metadata: metadata,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRetailerID(retailerID),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.UUID { return c.userID }
func (c CreateOrderCommand) RetailerID() kernel.UUID { return c.retailerID }
func (c CreateOrderCommand) ShippingAddress() order.Address { return c.address }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c CreateOrderCommand) Notes() string { return c.notes }
func (c CreateOrderCommand) Metadata() activity.Metadata { return c.metadata }

// Items returns a copy of the validated line items.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("retailerId", err)
	}

	c.retailerID = retailerID
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []OrderItemInput) error {
	if len(inputs) == 0 {
		return order.ErrOrderHasNoItems
	}

	items := make([]order.Item, 0, len(inputs))
	var itemErrs []error
	for i, in := range inputs {
		item, err := buildItem(in)
		if err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func buildItem(in OrderItemInput) (order.Item, error) {
	product, productErr := order.NewProduct(in.Name, in.Description, in.Category, in.SKU)
	unitPrice, priceErr := kernel.NewMoney(in.UnitPrice)
	if err := errors.Join(productErr, priceErr); err != nil {
		return order.Item{}, err
	}

	return order.NewItem(product, in.Quantity, unitPrice)
}

func (c *CreateOrderCommand) setAddress(in ShippingAddressInput) error {
	address, err := order.NewAddress(in.Name, in.Company, in.Street, in.City, in.State, in.ZipCode, in.Country)
	if err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method string) error {
	parsed, err := order.ParsePaymentMethod(method)
	if err != nil {
		return err
	}

	c.paymentMethod = parsed
	return nil
}
