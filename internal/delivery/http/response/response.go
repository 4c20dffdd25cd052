// Package response renders the JSON bodies of the public API. The shapes are
// part of the external contract: successes carry a message plus an optional
// payload keyed by the role's singular name, errors carry a message plus an
// error string.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the error response shape.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Message renders a bare success body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, echo.Map{"message": message})
}

// WithPayload renders a success body with one extra keyed payload, e.g.
// {"message": ..., "student": {...}}.
func WithPayload(c echo.Context, statusCode int, message string, key string, payload any) error {
	return c.JSON(statusCode, echo.Map{"message": message, key: payload})
}

// RoleLogin renders the role-agnostic login body.
func RoleLogin(c echo.Context, statusCode int, message string, role string, user any) error {
	return c.JSON(statusCode, echo.Map{"message": message, "role": role, "user": user})
}

// Error renders an error body.
func Error(c echo.Context, statusCode int, message string, details string) error {
	if details == "" {
		details = message
	}

	return c.JSON(statusCode, ErrorBody{Message: message, Error: details})
}
