// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"placement/internal/delivery/http/router/handler"
	"placement/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application. Every role
// gets the same route set under its own path prefix; the role-agnostic login
// probe sits directly under /api.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.POST("/login", r.accountHandler.LoginAny)

	for _, role := range entity.AllRoles() {
		group := api.Group("/" + role.PathName())
		{
			group.POST("/register", r.accountHandler.Register(role))
			group.POST("/login", r.accountHandler.Login(role))
			group.POST("/update", r.accountHandler.Update(role))
			group.POST("/forgot", r.accountHandler.ForgotPassword(role))
			group.POST("/reset/:token", r.accountHandler.ResetPassword(role))
		}
	}
}
