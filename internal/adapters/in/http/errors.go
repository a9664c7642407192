package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"b2better/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgValidationFailed = "Validation failed"
	msgInternal         = "Internal server error"
	msgUpstream         = "Recommendation service unavailable"
	msgConflict         = "Order was modified by another request, please retry"
)

// RequestValidationError carries field errors found while checking a request
// against the API document.
type RequestValidationError struct {
	Fields []FieldError
}

func (e *RequestValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "request validation failed: " + strings.Join(parts, "; ")
}

// NewErrorHandler maps errors returned by handlers and middleware to the
// response envelope.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
		} else if status == http.StatusBadGateway {
			logger.WarnContext(c.Request().Context(), "upstream call failed", "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = failure(c, status, body.Message, body.Errors)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}

func errorResponse(err error) (int, Envelope) {
	var (
		requestErr *RequestValidationError
		notFound   *errs.ObjectNotFoundError
		invalid    *errs.InvalidStateError
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, Envelope{Message: msgValidationFailed, Errors: requestErr.Fields}
	case isValidation(err):
		return http.StatusBadRequest, Envelope{Message: msgValidationFailed, Errors: collectFieldErrors(err, nil)}
	case errors.As(err, &notFound):
		return http.StatusNotFound, Envelope{Message: capitalize(notFound.ParamName) + " not found"}
	case errors.As(err, &invalid):
		return http.StatusBadRequest, Envelope{
			Message: fmt.Sprintf("%s. Current status: %s", invalid.Operation, invalid.CurrentState),
		}
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, Envelope{Message: msgConflict}
	case errors.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway, Envelope{Message: msgUpstream}
	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if m, isString := httpErr.Message.(string); isString && m != "" {
			message = m
		}
		return httpErr.Code, Envelope{Message: message}
	default:
		return http.StatusInternalServerError, Envelope{Message: msgInternal}
	}
}

func isValidation(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// collectFieldErrors flattens joined validation errors into one entry per field.
func collectFieldErrors(err error, out []FieldError) []FieldError {
	if joined, isJoined := err.(interface{ Unwrap() []error }); isJoined {
		for _, inner := range joined.Unwrap() {
			out = collectFieldErrors(inner, out)
		}
		return out
	}

	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
	)
	switch {
	case errors.As(err, &required):
		out = append(out, FieldError{Field: required.ParamName, Message: required.ParamName + " is required"})
	case errors.As(err, &outOfRange):
		out = append(out, FieldError{
			Field:   outOfRange.ParamName,
			Message: fmt.Sprintf("%s must be between %v and %v", outOfRange.ParamName, outOfRange.Min, outOfRange.Max),
		})
	case errors.As(err, &invalid):
		message := invalid.ParamName + " is invalid"
		if invalid.Cause != nil {
			message = strings.ReplaceAll(invalid.Cause.Error(), "\n", "; ")
		}
		out = append(out, FieldError{Field: invalid.ParamName, Message: message})
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
