// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OrderHandler   *handler.OrderHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	orderHandler   *handler.OrderHandler
	productHandler *handler.ProductHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		orderHandler:   params.OrderHandler,
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The role table per route:
//
//	list all orders      ADMIN
//	list orders by user  USER or ADMIN
//	get one order        USER or ADMIN
//	create order         USER
//	update order status  ADMIN
//	delete order         ADMIN
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public catalog reads; mutations require the admin role.
	productGroup := e.Group("/api/products")
	{
		productGroup.GET("", r.productHandler.ListAll)
		productGroup.GET("/:id", r.productHandler.GetByID)

		adminOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireAnyRole(entity.RoleAdmin),
		}
		productGroup.POST("", r.productHandler.Create, adminOnly...)
		productGroup.PUT("/:id", r.productHandler.Update, adminOnly...)
		productGroup.DELETE("/:id", r.productHandler.Delete, adminOnly...)
	}

	// Order routes all require authentication; the per-route role gates follow
	// the table above.
	orderGroup := e.Group("/api/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListAll,
			r.authMiddleware.RequireAnyRole(entity.RoleAdmin))
		orderGroup.GET("/user/:userId", r.orderHandler.ListByUser,
			r.authMiddleware.RequireAnyRole(entity.RoleUser, entity.RoleAdmin))
		orderGroup.GET("/:id", r.orderHandler.GetByID,
			r.authMiddleware.RequireAnyRole(entity.RoleUser, entity.RoleAdmin))
		orderGroup.POST("", r.orderHandler.Create,
			r.authMiddleware.RequireAnyRole(entity.RoleUser))
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateStatus,
			r.authMiddleware.RequireAnyRole(entity.RoleAdmin))
		orderGroup.DELETE("/:id", r.orderHandler.Delete,
			r.authMiddleware.RequireAnyRole(entity.RoleAdmin))
	}
}
