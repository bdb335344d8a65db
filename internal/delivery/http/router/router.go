// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ridehub/internal/delivery/http/middleware"
	"ridehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RiderHandler   *handler.RiderHandler
	DriverHandler  *handler.DriverHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	riderHandler   *handler.RiderHandler
	driverHandler  *handler.DriverHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		riderHandler:   params.RiderHandler,
		driverHandler:  params.DriverHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Rider routes: open registration, login and logout, guarded profile.
	// Logout stays outside the guard so it succeeds no matter what token
	// the client presents.
	riderGroup := e.Group("/riders")
	{
		riderGroup.POST("/register", r.riderHandler.Register)
		riderGroup.POST("/login", r.riderHandler.Login)
		riderGroup.GET("/profile", r.riderHandler.GetProfile, r.authMiddleware.AuthenticateRider)
		riderGroup.GET("/logout", r.riderHandler.Logout)
	}

	// Driver routes mirror the rider surface but run behind the driver guard.
	driverGroup := e.Group("/drivers")
	{
		driverGroup.POST("/register", r.driverHandler.Register)
		driverGroup.POST("/login", r.driverHandler.Login)
		driverGroup.GET("/profile", r.driverHandler.GetProfile, r.authMiddleware.AuthenticateDriver)
		driverGroup.GET("/logout", r.driverHandler.Logout)
	}
}
