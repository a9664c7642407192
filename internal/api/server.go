// Package api holds the HTTP bindings of the public API described by
// openapi.yaml: parameter types, request bodies, the ServerInterface and its
// echo registration. They are maintained by hand alongside the document and
// TestRegisterHandlers_CoversEveryOperation keeps the two in step.
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /dashboard/activity)
	ListActivities(ctx echo.Context, params ListActivitiesParams) error
	// (GET /dashboard/recent-orders)
	GetRecentOrders(ctx echo.Context, params GetRecentOrdersParams) error
	// (GET /dashboard/stats)
	GetDashboardStats(ctx echo.Context, params GetDashboardStatsParams) error
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/stats/overview)
	GetOrderStatistics(ctx echo.Context, params GetOrderStatisticsParams) error
	// (GET /orders/{orderNumber})
	GetOrder(ctx echo.Context, orderNumber string) error
	// (PUT /orders/{orderNumber}/cancel)
	CancelOrder(ctx echo.Context, orderNumber string) error
	// (PUT /orders/{orderNumber}/status)
	UpdateOrderStatus(ctx echo.Context, orderNumber string) error
	// (GET /recommendations)
	GetRecommendations(ctx echo.Context, params GetRecommendationsParams) error
	// (GET /retailers)
	ListRetailers(ctx echo.Context, params ListRetailersParams) error
	// (GET /retailers/meta/categories)
	ListRetailerCategories(ctx echo.Context) error
	// (GET /retailers/{id})
	GetRetailer(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func invalidParam(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return invalidParam(name, err)
	}
	return nil
}

func bindOrderNumber(ctx echo.Context) (string, error) {
	var orderNumber string
	err := runtime.BindStyledParameterWithOptions("simple", "orderNumber", ctx.Param("orderNumber"), &orderNumber,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", invalidParam("orderNumber", err)
	}
	return orderNumber, nil
}

// ListActivities converts echo context to params.
func (w *ServerInterfaceWrapper) ListActivities(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ListActivitiesParams
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	if err := bindQuery(ctx, "type", &params.Type); err != nil {
		return err
	}

	return w.Handler.ListActivities(ctx, params)
}

// GetRecentOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetRecentOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params GetRecentOrdersParams
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}

	return w.Handler.GetRecentOrders(ctx, params)
}

// GetDashboardStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboardStats(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params GetDashboardStatsParams
	if err := bindQuery(ctx, "period", &params.Period); err != nil {
		return err
	}

	return w.Handler.GetDashboardStats(ctx, params)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ListOrdersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	if err := bindQuery(ctx, "sortBy", &params.SortBy); err != nil {
		return err
	}
	if err := bindQuery(ctx, "sortOrder", &params.SortOrder); err != nil {
		return err
	}

	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateOrder(ctx)
}

// GetOrderStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatistics(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params GetOrderStatisticsParams
	if err := bindQuery(ctx, "period", &params.Period); err != nil {
		return err
	}

	return w.Handler.GetOrderStatistics(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderNumber)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}

	return w.Handler.CancelOrder(ctx, orderNumber)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	orderNumber, err := bindOrderNumber(ctx)
	if err != nil {
		return err
	}

	return w.Handler.UpdateOrderStatus(ctx, orderNumber)
}

// GetRecommendations converts echo context to params.
func (w *ServerInterfaceWrapper) GetRecommendations(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params GetRecommendationsParams
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}

	return w.Handler.GetRecommendations(ctx, params)
}

// ListRetailers converts echo context to params.
func (w *ServerInterfaceWrapper) ListRetailers(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ListRetailersParams
	if err := bindQuery(ctx, "category", &params.Category); err != nil {
		return err
	}
	if err := bindQuery(ctx, "search", &params.Search); err != nil {
		return err
	}
	if err := bindQuery(ctx, "verified", &params.Verified); err != nil {
		return err
	}
	if err := bindQuery(ctx, "sortBy", &params.SortBy); err != nil {
		return err
	}
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}

	return w.Handler.ListRetailers(ctx, params)
}

// ListRetailerCategories converts echo context to params.
func (w *ServerInterfaceWrapper) ListRetailerCategories(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListRetailerCategories(ctx)
}

// GetRetailer converts echo context to params.
func (w *ServerInterfaceWrapper) GetRetailer(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return invalidParam("id", err)
	}

	return w.Handler.GetRetailer(ctx, id)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/dashboard/activity", wrapper.ListActivities)
	router.GET(baseURL+"/dashboard/recent-orders", wrapper.GetRecentOrders)
	router.GET(baseURL+"/dashboard/stats", wrapper.GetDashboardStats)
	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/stats/overview", wrapper.GetOrderStatistics)
	router.GET(baseURL+"/orders/:orderNumber", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:orderNumber/cancel", wrapper.CancelOrder)
	router.PUT(baseURL+"/orders/:orderNumber/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/recommendations", wrapper.GetRecommendations)
	router.GET(baseURL+"/retailers", wrapper.ListRetailers)
	router.GET(baseURL+"/retailers/meta/categories", wrapper.ListRetailerCategories)
	router.GET(baseURL+"/retailers/:id", wrapper.GetRetailer)
}
