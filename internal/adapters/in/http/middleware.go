package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"b2better/internal/core/domain/model/activity"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const visitorTTL = 3 * time.Minute

// NewRateLimiterStore keeps one token bucket per client and forgets clients
// idle for longer than visitorTTL. A burst below one falls back to the
// per-second rate, and to a single request when the rate is below one.
func NewRateLimiterStore(rps float64, burst int) *middleware.RateLimiterMemoryStore {
	if burst < 1 {
		burst = max(int(rps), 1)
	}
	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: visitorTTL,
	})
}

// RateLimit throttles each client IP.
func RateLimit(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client").SetInternal(err)
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later")
		},
	})
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// ValidateRequests checks parameters and bodies against the API document
// before the handler runs. Routes missing from the document are passed through.
func ValidateRequests(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("failed to build request router: %w", err)
	}

	options := &openapi3filter.Options{
		MultiError:         true,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return &RequestValidationError{Fields: openAPIFieldErrors(validateErr, nil)}
			}

			return next(c)
		}
	}, nil
}

// openAPIFieldErrors flattens a validation error into field errors. The
// RequestError wrapper carries the parameter name, so it is matched before any
// MultiError it unwraps to.
func openAPIFieldErrors(err error, out []FieldError) []FieldError {
	switch e := err.(type) {
	case openapi3.MultiError:
		for _, inner := range e {
			out = openAPIFieldErrors(inner, out)
		}
		return out
	case *openapi3filter.RequestError:
		return requestFieldErrors(e, out)
	case *openapi3.SchemaError:
		return append(out, schemaFieldError("body", e))
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		return requestFieldErrors(requestErr, out)
	}
	return append(out, FieldError{Field: "request", Message: err.Error()})
}

func requestFieldErrors(requestErr *openapi3filter.RequestError, out []FieldError) []FieldError {
	field := "body"
	if requestErr.Parameter != nil {
		field = requestErr.Parameter.Name
	}
	if requestErr.Err == nil {
		return append(out, FieldError{Field: field, Message: requestErr.Reason})
	}

	if schemaMulti, ok := requestErr.Err.(openapi3.MultiError); ok {
		for _, inner := range schemaMulti {
			out = append(out, schemaFieldError(field, inner))
		}
		return out
	}
	return append(out, schemaFieldError(field, requestErr.Err))
}

func schemaFieldError(field string, err error) FieldError {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			field = strings.Join(pointer, ".")
		}
		return FieldError{Field: field, Message: schemaErr.Reason}
	}
	if err == nil {
		return FieldError{Field: field, Message: "is invalid"}
	}
	return FieldError{Field: field, Message: err.Error()}
}

// requestMetadata describes the client for the activity log.
func requestMetadata(c echo.Context) activity.Metadata {
	userAgent := c.Request().UserAgent()
	return activity.Metadata{
		IPAddress: c.RealIP(),
		UserAgent: userAgent,
		Device:    deviceOf(userAgent),
		Browser:   browserOf(userAgent),
		OS:        osOf(userAgent),
	}
}

func deviceOf(ua string) string {
	switch {
	case ua == "":
		return ""
	case strings.Contains(ua, "iPad") || strings.Contains(ua, "Tablet"):
		return "tablet"
	case strings.Contains(ua, "Mobi"):
		return "mobile"
	default:
		return "desktop"
	}
}

func browserOf(ua string) string {
	// Order matters: Edge and Chrome user agents also mention Safari.
	for _, candidate := range []struct{ token, name string }{
		{"Edg/", "Edge"},
		{"OPR/", "Opera"},
		{"Firefox/", "Firefox"},
		{"Chrome/", "Chrome"},
		{"Safari/", "Safari"},
	} {
		if strings.Contains(ua, candidate.token) {
			return candidate.name
		}
	}
	return ""
}

func osOf(ua string) string {
	for _, candidate := range []struct{ token, name string }{
		{"Windows", "Windows"},
		{"Android", "Android"},
		{"iPhone", "iOS"},
		{"iPad", "iOS"},
		{"Mac OS X", "macOS"},
		{"Linux", "Linux"},
	} {
		if strings.Contains(ua, candidate.token) {
			return candidate.name
		}
	}
	return ""
}
