package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"b2better/internal/api"
	"b2better/internal/core/application/usecases/commands"
	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	OrderStatusUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}
	OrderCanceller interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}
	OrderDetailReader interface {
		Handle(ctx context.Context, query queries.GetOrderDetailQuery) (queries.OrderDetail, error)
	}
	OrderStatisticsReader interface {
		Handle(ctx context.Context, query queries.GetOrderStatisticsQuery) (queries.OrderStatistics, error)
	}
	DashboardStatsReader interface {
		Handle(ctx context.Context, query queries.GetDashboardStatsQuery) (queries.DashboardStats, error)
	}
	RecentOrdersReader interface {
		Handle(ctx context.Context, query queries.GetRecentOrdersQuery) ([]queries.RecentOrder, error)
	}
	ActivityLister interface {
		Handle(ctx context.Context, query queries.ListActivitiesQuery) (queries.ListActivitiesQueryResponse, error)
	}
	RecommendationsReader interface {
		Handle(ctx context.Context, query queries.GetRecommendationsQuery) (json.RawMessage, error)
	}
	RetailerLister interface {
		Handle(ctx context.Context, query queries.ListRetailersQuery) (queries.ListRetailersQueryResponse, error)
	}
	RetailerProfileReader interface {
		Handle(ctx context.Context, query queries.GetRetailerProfileQuery) (queries.RetailerProfile, error)
	}
	RetailerCategoryLister interface {
		Handle(ctx context.Context) ([]string, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder       OrderCreator
	UpdateOrderStatus OrderStatusUpdater
	CancelOrder       OrderCanceller

	ListOrders         OrderLister
	GetOrderDetail     OrderDetailReader
	GetOrderStatistics OrderStatisticsReader
	GetDashboardStats  DashboardStatsReader
	GetRecentOrders    RecentOrdersReader
	ListActivities     ActivityLister
	GetRecommendations RecommendationsReader

	ListRetailers          RetailerLister
	GetRetailerProfile     RetailerProfileReader
	ListRetailerCategories RetailerCategoryLister
}

// Server implements api.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	now      func() time.Time
}

var _ api.ServerInterface = &Server{}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http-server"),
		now:      time.Now,
	}
}

type healthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// GetHealth handles GET /api/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return okWithMessage(ctx, http.StatusOK, "Service is healthy", healthStatus{
		Status:    "ok",
		Timestamp: s.now().UTC(),
	})
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(
		p.UserID,
		deref(params.Status),
		intOr(params.Page, queries.DefaultPage),
		intOr(params.Limit, queries.DefaultOrdersLimit),
		deref(params.SortBy),
		deref(params.SortOrder),
	)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return paginated(ctx, page.Orders, page.Pagination)
}

// GetOrder handles GET /api/orders/:orderNumber.
func (s *Server) GetOrder(ctx echo.Context, orderNumber string) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDetailQuery(p.UserID, orderNumber)
	if err != nil {
		return err
	}

	detail, err := s.handlers.GetOrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ok(ctx, detail)
}

type createdOrder struct {
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"itemCount"`
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var body api.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}

	retailerID, err := kernel.UUIDFromString(body.RetailerId)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("retailerId", err)
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.OrderItemInput{
			Name:        item.Product.Name,
			Description: deref(item.Product.Description),
			Category:    deref(item.Product.Category),
			SKU:         deref(item.Product.Sku),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	address := commands.ShippingAddressInput{
		Name:    body.ShippingAddress.Name,
		Company: deref(body.ShippingAddress.Company),
		Street:  body.ShippingAddress.Street,
		City:    body.ShippingAddress.City,
		State:   body.ShippingAddress.State,
		ZipCode: body.ShippingAddress.ZipCode,
		Country: body.ShippingAddress.Country,
	}

	cmd, err := commands.NewCreateOrderCommand(
		p.UserID,
		retailerID,
		items,
		address,
		body.PaymentMethod,
		deref(body.Notes),
		requestMetadata(ctx),
	)
	if err != nil {
		return err
	}

	placed, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return okWithMessage(ctx, http.StatusCreated, "Order created successfully", createdOrder{
		OrderNumber: placed.Number().String(),
		Status:      placed.Status().String(),
		Total:       placed.Pricing().Total().Float64(),
		ItemCount:   len(placed.Items()),
	})
}

type timelineEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
	UpdatedBy string    `json:"updatedBy"`
}

type updatedOrder struct {
	OrderNumber string          `json:"orderNumber"`
	Status      string          `json:"status"`
	Timeline    []timelineEntry `json:"timeline"`
}

// UpdateOrderStatus handles PUT /api/orders/:orderNumber/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderNumber string) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var body api.UpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		p.UserID,
		orderNumber,
		body.Status,
		deref(body.Note),
		p.actor(),
		requestMetadata(ctx),
	)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	entries := updated.Timeline()
	timeline := make([]timelineEntry, 0, len(entries))
	for _, entry := range entries {
		timeline = append(timeline, timelineEntry{
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
			UpdatedBy: entry.UpdatedBy(),
		})
	}

	return okWithMessage(ctx, http.StatusOK, "Order status updated successfully", updatedOrder{
		OrderNumber: updated.Number().String(),
		Status:      updated.Status().String(),
		Timeline:    timeline,
	})
}

type cancelledOrder struct {
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
}

// CancelOrder handles PUT /api/orders/:orderNumber/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderNumber string) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	var body api.CancelOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}

	cmd, err := commands.NewCancelOrderCommand(
		p.UserID,
		orderNumber,
		deref(body.Reason),
		p.actor(),
		requestMetadata(ctx),
	)
	if err != nil {
		return err
	}

	cancelled, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return okWithMessage(ctx, http.StatusOK, "Order cancelled successfully", cancelledOrder{
		OrderNumber: cancelled.Number().String(),
		Status:      cancelled.Status().String(),
	})
}

// GetOrderStatistics handles GET /api/orders/stats/overview.
func (s *Server) GetOrderStatistics(ctx echo.Context, params api.GetOrderStatisticsParams) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatisticsQuery(p.UserID, deref(params.Period))
	if err != nil {
		return err
	}

	stats, err := s.handlers.GetOrderStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ok(ctx, stats)
}

// GetDashboardStats handles GET /api/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context, params api.GetDashboardStatsParams) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDashboardStatsQuery(p.UserID, deref(params.Period))
	if err != nil {
		return err
	}

	stats, err := s.handlers.GetDashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ok(ctx, stats)
}

// GetRecentOrders handles GET /api/dashboard/recent-orders.
func (s *Server) GetRecentOrders(ctx echo.Context, params api.GetRecentOrdersParams) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRecentOrdersQuery(p.UserID, intOr(params.Limit, queries.DefaultRecentOrdersLimit))
	if err != nil {
		return err
	}

	recent, err := s.handlers.GetRecentOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ok(ctx, recent)
}

// ListActivities handles GET /api/dashboard/activity.
func (s *Server) ListActivities(ctx echo.Context, params api.ListActivitiesParams) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListActivitiesQuery(
		p.UserID,
		deref(params.Type),
		intOr(params.Page, queries.DefaultPage),
		intOr(params.Limit, queries.DefaultActivitiesLimit),
	)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListActivities.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return paginated(ctx, page.Activities, page.Pagination)
}

// GetRecommendations handles GET /api/recommendations.
func (s *Server) GetRecommendations(ctx echo.Context, params api.GetRecommendationsParams) error {
	p, err := principalFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRecommendationsQuery(
		p.UserID,
		intOr(params.Limit, queries.DefaultRecommendationsLimit),
	)
	if err != nil {
		return err
	}

	recommendations, err := s.handlers.GetRecommendations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ok(ctx, recommendations)
}

// ListRetailers handles GET /api/retailers.
func (s *Server) ListRetailers(ctx echo.Context, params api.ListRetailersParams) error {
	query, err := queries.NewListRetailersQuery(
		deref(params.Category),
		deref(params.Search),
		params.Verified != nil && *params.Verified,
		deref(params.SortBy),
		intOr(params.Page, queries.DefaultPage),
		intOr(params.Limit, queries.DefaultRetailersLimit),
	)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListRetailers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return paginated(ctx, page.Retailers, page.Pagination)
}

// GetRetailer handles GET /api/retailers/:id.
func (s *Server) GetRetailer(ctx echo.Context, id string) error {
	query, err := queries.NewGetRetailerProfileQuery(id)
	if err != nil {
		return err
	}

	profile, err := s.handlers.GetRetailerProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ok(ctx, profile)
}

// ListRetailerCategories handles GET /api/retailers/meta/categories.
func (s *Server) ListRetailerCategories(ctx echo.Context) error {
	categories, err := s.handlers.ListRetailerCategories.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ok(ctx, categories)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
