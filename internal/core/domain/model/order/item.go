package order

import (
	"errors"
	"strings"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"
)

// Product is the snapshot of a catalogue product taken when the order is placed.
// Later catalogue edits do not change existing orders.
type Product struct {
	name        string
	description string
	category    string
	sku         string
}

// NewProduct builds a snapshot. Only the name is required.
func NewProduct(name, description, category, sku string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, errs.NewValueIsRequiredError("product.name")
	}
	return Product{name: name, description: description, category: category, sku: sku}, nil
}

func (p Product) Name() string { return p.name }
func (p Product) Description() string { return p.description }
func (p Product) Category() string { return p.category }
func (p Product) SKU() string { return p.sku }

// Item is one order line. Its total is always quantity × unit price.
type Item struct {
	product    Product
	quantity   int
	unitPrice  kernel.Money
	totalPrice kernel.Money
}

// NewItem validates the line and computes its total.
func NewItem(product Product, quantity int, unitPrice kernel.Money) (Item, error) {
	var productErr error
	if product.name == "" {
		productErr = errs.NewValueIsRequiredError("product.name")
	}
	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if err := errors.Join(productErr, quantityErr); err != nil {
		return Item{}, err
	}

	total, err := unitPrice.Multiply(quantity)
	if err != nil {
		return Item{}, err
	}

	return Item{product: product, quantity: quantity, unitPrice: unitPrice, totalPrice: total}, nil
}

func (i Item) Product() Product { return i.product }
func (i Item) Quantity() int { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) TotalPrice() kernel.Money { return i.totalPrice }
