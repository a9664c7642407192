package http

import (
	"net/http"

	"b2better/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every response body.
type Envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message,omitempty"`
	Data       any                 `json:"data,omitempty"`
	Pagination *queries.Pagination `json:"pagination,omitempty"`
	Errors     []FieldError        `json:"errors,omitempty"`
}

// FieldError points at one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func okWithMessage(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func paginated(c echo.Context, data any, pagination queries.Pagination) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Pagination: &pagination})
}

func failure(c echo.Context, status int, message string, fields []FieldError) error {
	return c.JSON(status, Envelope{Success: false, Message: message, Errors: fields})
}
