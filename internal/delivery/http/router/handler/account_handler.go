// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"placement/internal/delivery/http/response"
	"placement/internal/domain/entity"
	"placement/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for the credential and profile handlers.
// The role-specific routes share these methods; each route closes over its
// role so the payload can never choose one.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles account creation for the given role.
func (h *AccountHandler) Register(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var input *usecase.RegisterInput
		if err := c.Bind(&input); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
		}
		// Bind leaves input nil on an empty body; treat that as an empty payload.
		if input == nil {
			input = new(usecase.RegisterInput)
		}

		account, err := h.uc.Register(c.Request().Context(), role, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.WithPayload(c, http.StatusOK, "Registration successful", role.String(), account)
	}
}

// Login handles credential verification for the given role.
func (h *AccountHandler) Login(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var input *usecase.LoginInput
		if err := c.Bind(&input); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
		}
		if input == nil {
			input = new(usecase.LoginInput)
		}

		account, err := h.uc.Login(c.Request().Context(), role, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.WithPayload(c, http.StatusOK, "Login successful", role.String(), account)
	}
}

// LoginAny handles the role-agnostic login probe.
func (h *AccountHandler) LoginAny(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if input == nil {
		input = new(usecase.LoginInput)
	}

	role, account, err := h.uc.LoginAny(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.RoleLogin(c, http.StatusOK, "Login successful", role.String(), account)
}

// Update handles partial profile updates for the given role.
func (h *AccountHandler) Update(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var input *usecase.UpdateInput
		if err := c.Bind(&input); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
		}
		if input == nil {
			input = new(usecase.UpdateInput)
		}

		account, err := h.uc.Update(c.Request().Context(), role, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.WithPayload(c, http.StatusOK, "Changes Saved", role.String(), account)
	}
}

// forgotPasswordRequest carries the reset request payload.
type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword handles reset-token issuance for the given role.
func (h *AccountHandler) ForgotPassword(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var input forgotPasswordRequest
		if err := c.Bind(&input); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
		}

		output, err := h.uc.ForgotPassword(c.Request().Context(), role, input.Email)
		if err != nil {
			return errors.WithStack(err)
		}

		body := echo.Map{"message": output.Message}
		if output.Disclosed {
			body["resetToken"] = output.ResetToken
		}

		return c.JSON(http.StatusOK, body)
	}
}

// resetPasswordRequest carries the new credential for a reset redemption.
type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword handles reset-token redemption for the given role. The raw
// token arrives as a path parameter.
func (h *AccountHandler) ResetPassword(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var input resetPasswordRequest
		if err := c.Bind(&input); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
		}

		err := h.uc.ResetPassword(c.Request().Context(), role, c.Param("token"), input.Password)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Message(c, http.StatusOK, "Password reset successful")
	}
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
