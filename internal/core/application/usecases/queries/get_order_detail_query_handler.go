package queries

import (
	"context"
	"time"

	"b2better/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler returns the full order view. Orders owned by
// other users are reported exactly like missing ones.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

type orderDetailRow struct {
	ID                        uuid.UUID
	OrderNumber               string
	Status                    string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	Subtotal                  decimal.Decimal
	Tax                       decimal.Decimal
	ShippingCost              decimal.Decimal
	Discount                  decimal.Decimal
	Total                     decimal.Decimal
	ShippingName              string
	ShippingCompany           string
	ShippingStreet            string
	ShippingCity              string
	ShippingState             string
	ShippingZipCode           string
	ShippingCountry           string
	ShippingMethod            string
	ShippingTrackingNumber    string
	ShippingEstimatedDelivery *time.Time
	ShippingActualDelivery    *time.Time
	PaymentMethod             string
	PaymentStatus             string
	PaymentTransactionID      string
	PaymentPaidAt             *time.Time
	CustomerNotes             string
	InternalNotes             string
	RetailerID                uuid.UUID
	RetailerName              string
	RetailerEmail             string
	RetailerPhone             string
	RetailerCity              string
	RetailerState             string
}

type orderItemRow struct {
	ProductName        string
	ProductDescription string
	ProductCategory    string
	ProductSku         string
	Quantity           int
	UnitPrice          decimal.Decimal
	TotalPrice         decimal.Decimal
}

type timelineRow struct {
	Status    string
	Timestamp time.Time
	Note      string
	UpdatedBy string
}

func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []orderDetailRow
	if err := db.Raw(`
		SELECT
			o.id, o.order_number, o.status, o.created_at, o.updated_at,
			o.subtotal, o.tax, o.shipping_cost, o.discount, o.total,
			o.shipping_name, o.shipping_company, o.shipping_street, o.shipping_city,
			o.shipping_state, o.shipping_zip_code, o.shipping_country, o.shipping_method,
			o.shipping_tracking_number, o.shipping_estimated_delivery, o.shipping_actual_delivery,
			o.payment_method, o.payment_status, o.payment_transaction_id, o.payment_paid_at,
			o.customer_notes, o.internal_notes,
			r.id AS retailer_id,
			r.name AS retailer_name,
			r.contact_email AS retailer_email,
			r.contact_phone AS retailer_phone,
			r.location_city AS retailer_city,
			r.location_state AS retailer_state
		FROM orders o
		JOIN retailers r ON r.id = o.retailer_id
		WHERE o.order_number = ? AND o.user_id = ? AND o.is_active = true
	`, query.Number().String(), query.UserID().Bytes()).Scan(&rows).Error; err != nil {
		return OrderDetail{}, err
	}
	if len(rows) == 0 {
		return OrderDetail{}, errs.NewObjectNotFoundError("order", query.Number())
	}
	row := rows[0]

	var items []orderItemRow
	if err := db.Raw(`
		SELECT product_name, product_description, product_category, product_sku,
			quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, row.ID).Scan(&items).Error; err != nil {
		return OrderDetail{}, err
	}

	var timeline []timelineRow
	if err := db.Raw(`
		SELECT status, timestamp, note, updated_by
		FROM order_timeline
		WHERE order_id = ?
		ORDER BY position
	`, row.ID).Scan(&timeline).Error; err != nil {
		return OrderDetail{}, err
	}

	return toOrderDetail(row, items, timeline), nil
}

func toOrderDetail(row orderDetailRow, items []orderItemRow, timeline []timelineRow) OrderDetail {
	detail := OrderDetail{
		OrderNumber: row.OrderNumber,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
		Items:       make([]OrderItemView, 0, len(items)),
		Pricing: PricingView{
			Subtotal: row.Subtotal.InexactFloat64(),
			Tax:      row.Tax.InexactFloat64(),
			Shipping: row.ShippingCost.InexactFloat64(),
			Discount: row.Discount.InexactFloat64(),
			Total:    row.Total.InexactFloat64(),
		},
		Shipping: ShippingView{
			Address: AddressView{
				Name:    row.ShippingName,
				Company: row.ShippingCompany,
				Street:  row.ShippingStreet,
				City:    row.ShippingCity,
				State:   row.ShippingState,
				ZipCode: row.ShippingZipCode,
				Country: row.ShippingCountry,
			},
			Method:            row.ShippingMethod,
			TrackingNumber:    row.ShippingTrackingNumber,
			EstimatedDelivery: row.ShippingEstimatedDelivery,
			ActualDelivery:    row.ShippingActualDelivery,
		},
		Payment: PaymentView{
			Method:        row.PaymentMethod,
			Status:        row.PaymentStatus,
			TransactionID: row.PaymentTransactionID,
			PaidAt:        row.PaymentPaidAt,
		},
		Notes:    NotesView{Customer: row.CustomerNotes, Internal: row.InternalNotes},
		Timeline: make([]TimelineView, 0, len(timeline)),
		Retailer: RetailerContacts{
			ID:       row.RetailerID.String(),
			Name:     row.RetailerName,
			Email:    row.RetailerEmail,
			Phone:    row.RetailerPhone,
			Location: row.RetailerCity + ", " + row.RetailerState,
		},
	}

	for _, item := range items {
		detail.Items = append(detail.Items, OrderItemView{
			Product: ProductView{
				Name:        item.ProductName,
				Description: item.ProductDescription,
				Category:    item.ProductCategory,
				SKU:         item.ProductSku,
			},
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.InexactFloat64(),
			TotalPrice: item.TotalPrice.InexactFloat64(),
		})
	}

	for _, entry := range timeline {
		detail.Timeline = append(detail.Timeline, TimelineView{
			Status:    entry.Status,
			Timestamp: entry.Timestamp.UTC(),
			Note:      entry.Note,
			UpdatedBy: entry.UpdatedBy,
		})
	}

	return detail
}
