// Package orderrepo persists order aggregates in three tables: orders (with the
// pricing, shipping, payment and notes records as embedded columns),
// order_items and order_timeline.
package orderrepo

import (
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The (user_id, created_at) index serves owner-scoped listings and period reports.
type OrderDTO struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderNumber   string             `gorm:"size:16;not null;uniqueIndex"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index:idx_orders_user_created,priority:1"`
	RetailerID    uuid.UUID          `gorm:"type:uuid;not null;index"`
	Pricing       PricingDTO         `gorm:"embedded"`
	Status        string             `gorm:"size:16;not null;index"`
	Shipping      ShippingDTO        `gorm:"embedded;embeddedPrefix:shipping_"`
	Payment       PaymentDTO         `gorm:"embedded;embeddedPrefix:payment_"`
	CustomerNotes string             `gorm:"size:1000"`
	InternalNotes string             `gorm:"size:1000"`
	IsActive      bool               `gorm:"not null"`
	Version       int                `gorm:"not null"`
	CreatedAt     time.Time          `gorm:"not null;index:idx_orders_user_created,priority:2"`
	UpdatedAt     time.Time          `gorm:"not null"`
	Items         []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Timeline      []TimelineEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// PricingDTO holds the money columns. Amounts are exact decimals.
type PricingDTO struct {
	Subtotal     decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Tax          decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	ShippingCost decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Discount     decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Total        decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

type ShippingDTO struct {
	Name              string `gorm:"size:200;not null"`
	Company           string `gorm:"size:200"`
	Street            string `gorm:"size:200;not null"`
	City              string `gorm:"size:100;not null"`
	State             string `gorm:"size:100;not null"`
	ZipCode           string `gorm:"size:20;not null"`
	Country           string `gorm:"size:100;not null"`
	Method            string `gorm:"size:50;not null"`
	TrackingNumber    string `gorm:"size:100"`
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
}

type PaymentDTO struct {
	Method        string `gorm:"size:20;not null"`
	Status        string `gorm:"size:20;not null"`
	TransactionID string `gorm:"size:100"`
	PaidAt        *time.Time
}

// OrderItemDTO is one line of an order. Position preserves the submitted order of lines.
type OrderItemDTO struct {
	ID                 uint            `gorm:"primaryKey"`
	OrderID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position           int             `gorm:"not null"`
	ProductName        string          `gorm:"size:200;not null"`
	ProductDescription string          `gorm:"size:1000"`
	ProductCategory    string          `gorm:"size:100"`
	ProductSku         string          `gorm:"size:100"`
	Quantity           int             `gorm:"not null"`
	UnitPrice          decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	TotalPrice         decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// TimelineEntryDTO is an append-only status history row.
type TimelineEntryDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
	Status    string    `gorm:"size:16;not null"`
	Timestamp time.Time `gorm:"not null"`
	Note      string    `gorm:"size:1000"`
	UpdatedBy string    `gorm:"size:200;not null"`
}

func (TimelineEntryDTO) TableName() string {
	return "order_timeline"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()
	pricing := o.Pricing()
	shipping := o.Shipping()
	address := shipping.Address()
	payment := o.Payment()

	dto := OrderDTO{
		ID:          id,
		OrderNumber: o.Number().String(),
		UserID:      o.UserID().Bytes(),
		RetailerID:  o.RetailerID().Bytes(),
		Pricing: PricingDTO{
			Subtotal:     pricing.Subtotal().Amount(),
			Tax:          pricing.Tax().Amount(),
			ShippingCost: pricing.Shipping().Amount(),
			Discount:     pricing.Discount().Amount(),
			Total:        pricing.Total().Amount(),
		},
		Status: o.Status().String(),
		Shipping: ShippingDTO{
			Name:              address.Name(),
			Company:           address.Company(),
			Street:            address.Street(),
			City:              address.City(),
			State:             address.State(),
			ZipCode:           address.ZipCode(),
			Country:           address.Country(),
			Method:            shipping.Method(),
			TrackingNumber:    shipping.TrackingNumber(),
			EstimatedDelivery: shipping.EstimatedDelivery(),
			ActualDelivery:    shipping.ActualDelivery(),
		},
		Payment: PaymentDTO{
			Method:        payment.Method().String(),
			Status:        payment.Status().String(),
			TransactionID: payment.TransactionID(),
			PaidAt:        payment.PaidAt(),
		},
		CustomerNotes: o.Notes().Customer(),
		InternalNotes: o.Notes().Internal(),
		IsActive:      o.IsActive(),
		Version:       o.Version(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}

	for i, item := range o.Items() {
		product := item.Product()
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:            id,
			Position:           i,
			ProductName:        product.Name(),
			ProductDescription: product.Description(),
			ProductCategory:    product.Category(),
			ProductSku:         product.SKU(),
			Quantity:           item.Quantity(),
			UnitPrice:          item.UnitPrice().Amount(),
			TotalPrice:         item.TotalPrice().Amount(),
		})
	}

	dto.Timeline = timelineFromDomain(id, o.Timeline())
	return dto
}

func timelineFromDomain(orderID uuid.UUID, entries []order.TimelineEntry) []TimelineEntryDTO {
	dtos := make([]TimelineEntryDTO, 0, len(entries))
	for i, entry := range entries {
		dtos = append(dtos, TimelineEntryDTO{
			OrderID:   orderID,
			Position:  i,
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
			UpdatedBy: entry.UpdatedBy(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate. Items and Timeline must be loaded ordered by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	pricing, err := pricingToDomain(dto.Pricing)
	if err != nil {
		return nil, err
	}

	timeline := make([]order.TimelineEntry, 0, len(dto.Timeline))
	for _, entry := range dto.Timeline {
		timeline = append(timeline, order.NewTimelineEntry(
			order.Status(entry.Status), entry.Timestamp, entry.Note, entry.UpdatedBy))
	}

	return order.RestoreOrder(order.Snapshot{
		ID:         id,
		Number:     order.Number(dto.OrderNumber),
		UserID:     userID,
		RetailerID: retailerID,
		Items:      items,
		Pricing:    pricing,
		Status:     order.Status(dto.Status),
		Shipping: order.RestoreShipping(
			order.RestoreAddress(
				dto.Shipping.Name, dto.Shipping.Company, dto.Shipping.Street, dto.Shipping.City,
				dto.Shipping.State, dto.Shipping.ZipCode, dto.Shipping.Country,
			),
			dto.Shipping.Method,
			dto.Shipping.TrackingNumber,
			dto.Shipping.EstimatedDelivery,
			dto.Shipping.ActualDelivery,
		),
		Payment: order.RestorePayment(
			order.PaymentMethod(dto.Payment.Method),
			order.PaymentStatus(dto.Payment.Status),
			dto.Payment.TransactionID,
			dto.Payment.PaidAt,
		),
		Notes:     order.NewNotes(dto.CustomerNotes, dto.InternalNotes),
		Timeline:  timeline,
		IsActive:  dto.IsActive,
		Version:   dto.Version,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	product, err := order.NewProduct(dto.ProductName, dto.ProductDescription, dto.ProductCategory, dto.ProductSku)
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(product, dto.Quantity, unitPrice)
}

func pricingToDomain(dto PricingDTO) (order.Pricing, error) {
	amounts := make([]kernel.Money, 0, 4)
	for _, amount := range []decimal.Decimal{dto.Subtotal, dto.Tax, dto.ShippingCost, dto.Discount} {
		m, err := kernel.NewMoney(amount)
		if err != nil {
			return order.Pricing{}, err
		}
		amounts = append(amounts, m)
	}
	return order.NewPricing(amounts[0], amounts[1], amounts[2], amounts[3])
}
