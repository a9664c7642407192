package api

import (
	"github.com/shopspring/decimal"
)

const BearerAuthScopes = "bearerAuth.Scopes"

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	Page      *int    `form:"page,omitempty" json:"page,omitempty"`
	Limit     *int    `form:"limit,omitempty" json:"limit,omitempty"`
	SortBy    *string `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	SortOrder *string `form:"sortOrder,omitempty" json:"sortOrder,omitempty"`
}

// GetOrderStatisticsParams defines parameters for GetOrderStatistics.
type GetOrderStatisticsParams struct {
	Period *string `form:"period,omitempty" json:"period,omitempty"`
}

// GetDashboardStatsParams defines parameters for GetDashboardStats.
type GetDashboardStatsParams struct {
	Period *string `form:"period,omitempty" json:"period,omitempty"`
}

// GetRecentOrdersParams defines parameters for GetRecentOrders.
type GetRecentOrdersParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListActivitiesParams defines parameters for ListActivities.
type ListActivitiesParams struct {
	Page  *int    `form:"page,omitempty" json:"page,omitempty"`
	Limit *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Type  *string `form:"type,omitempty" json:"type,omitempty"`
}

// GetRecommendationsParams defines parameters for GetRecommendations.
type GetRecommendationsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListRetailersParams defines parameters for ListRetailers.
type ListRetailersParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
	Search   *string `form:"search,omitempty" json:"search,omitempty"`
	Verified *bool   `form:"verified,omitempty" json:"verified,omitempty"`
	SortBy   *string `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	Page     *int    `form:"page,omitempty" json:"page,omitempty"`
	Limit    *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

type Product struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Sku         *string `json:"sku,omitempty"`
}

type OrderItem struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type Address struct {
	Name    string  `json:"name"`
	Company *string `json:"company,omitempty"`
	Street  string  `json:"street"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode string  `json:"zipCode"`
	Country string  `json:"country"`
}

type CreateOrderRequest struct {
	RetailerId      string      `json:"retailerId"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Notes           *string     `json:"notes,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

type CancelOrderRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = CreateOrderRequest

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = UpdateOrderStatusRequest

// CancelOrderJSONRequestBody defines body for CancelOrder for application/json ContentType.
type CancelOrderJSONRequestBody = CancelOrderRequest
