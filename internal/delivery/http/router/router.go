// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	SellerHandler  *handler.SellerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	sellerHandler  *handler.SellerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		sellerHandler:  params.SellerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths mirror the public API contract exactly, dashes, underscores
// and all, so existing clients keep working.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/api/v1/user")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		// Token refresh authenticates by the refresh credential itself.
		userGroup.PATCH("/regenerate_tokens", r.userHandler.RegenerateTokens)

		userGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.AuthenticateUser)
		userGroup.PATCH("/update", r.userHandler.Update, r.authMiddleware.AuthenticateUser)
		userGroup.DELETE("/delete_profile", r.userHandler.DeleteProfile, r.authMiddleware.AuthenticateUser)
		userGroup.GET("/current_user", r.userHandler.CurrentUser, r.authMiddleware.AuthenticateUser)
	}

	sellerGroup := e.Group("/api/v1/seller")
	{
		sellerGroup.POST("/register", r.sellerHandler.Register)
		sellerGroup.POST("/login", r.sellerHandler.Login)

		sellerGroup.POST("/logout", r.sellerHandler.Logout, r.authMiddleware.AuthenticateSeller)
		sellerGroup.PATCH("/update-name", r.sellerHandler.UpdateName, r.authMiddleware.AuthenticateSeller)
		sellerGroup.PATCH("/update-phone-email", r.sellerHandler.UpdateContact, r.authMiddleware.AuthenticateSeller)
		sellerGroup.PATCH("/update-password", r.sellerHandler.UpdatePassword, r.authMiddleware.AuthenticateSeller)
		sellerGroup.PATCH("/update-location-pincode", r.sellerHandler.UpdateLocation, r.authMiddleware.AuthenticateSeller)
		sellerGroup.DELETE("/delete-profile", r.sellerHandler.DeleteProfile, r.authMiddleware.AuthenticateSeller)
		sellerGroup.PUT("/regenerate-tokens", r.sellerHandler.RegenerateTokens, r.authMiddleware.AuthenticateSeller)
	}
}
