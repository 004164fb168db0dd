// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"gatehouse/config"
	"gatehouse/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Form endpoints
	e.POST("/submitContactForm", r.contactHandler.Submit)
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// Everything else is served from the public asset directory.
	e.Static("/", r.cfg.HTTP.StaticDir)
}
