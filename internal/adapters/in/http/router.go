package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"b2better/internal/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	APIBasePath = "/api"
	HealthPath  = APIBasePath + "/health"
)

// RouterConfig holds the settings of the public HTTP surface.
type RouterConfig struct {
	Validator      *TokenValidator
	RateLimitRPS   float64
	RateLimitBurst int
	AllowOrigins   []string
	LogLevel       log.Lvl
}

// NewRouter assembles the echo instance: shared middleware, request
// validation against the API document, authentication and the API routes.
// The API document is served under /swagger.
func NewRouter(server api.ServerInterface, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = RegisterSwaggerDoc(swagger); err != nil {
		return nil, err
	}
	validate, err := ValidateRequests(swagger)
	if err != nil {
		return nil, err
	}
	if cfg.Validator == nil {
		return nil, fmt.Errorf("token validator is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.HTTPErrorHandler = NewErrorHandler(logger.With("component", "http-errors"))

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger.With("component", "http")))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if cfg.RateLimitRPS > 0 {
		e.Use(RateLimit(NewRateLimiterStore(cfg.RateLimitRPS, cfg.RateLimitBurst)))
	}

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(SwaggerInstanceName)))

	group := e.Group(APIBasePath, Authenticate(cfg.Validator, HealthPath), validate)
	api.RegisterHandlers(group, server)

	return e, nil
}
