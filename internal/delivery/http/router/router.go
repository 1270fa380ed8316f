// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ApprovalHandler *handler.ApprovalHandler
	CatalogHandler  *handler.CatalogHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimit       *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	approvalHandler *handler.ApprovalHandler
	catalogHandler  *handler.CatalogHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimit       *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		approvalHandler: params.ApprovalHandler,
		catalogHandler:  params.CatalogHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimit:       params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes. Credential endpoints sit behind the rate limiter.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimit.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimit.Limit)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password-reset-request", r.authHandler.RequestPasswordReset, r.rateLimit.Limit)
		authGroup.POST("/password-reset", r.authHandler.ResetPassword)
	}

	// Account routes that require authentication
	accountGroup := e.Group("/auth")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.POST("/logout-all", r.authHandler.LogoutAll)
		accountGroup.POST("/change-password", r.authHandler.ChangePassword)
		accountGroup.GET("/profile", r.authHandler.GetProfile)
		accountGroup.PUT("/profile", r.authHandler.UpdateProfile)
		accountGroup.DELETE("/account", r.authHandler.DeactivateAccount)
	}

	// Catalog routes vary by caller; authentication is optional.
	catalogGroup := e.Group("/catalog")
	catalogGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		catalogGroup.GET("/pricing-tier", r.catalogHandler.PricingTier)
	}

	// Distributor self-service routes
	distributorGroup := e.Group("/distributors")
	distributorGroup.Use(r.authMiddleware.Authenticate)
	distributorGroup.Use(r.authMiddleware.RequireRole(entity.RoleDistributor))
	{
		distributorGroup.GET("/approval-status", r.approvalHandler.OwnStatus)
	}

	// Admin routes restricted to sales representatives
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleSalesRep))
	{
		adminGroup.GET("/distributors/pending", r.approvalHandler.ListPending)
		adminGroup.PUT("/distributors/:id/approval", r.approvalHandler.Decide)
	}
}
