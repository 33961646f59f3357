// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chow/internal/delivery/http/middleware"
	"chow/internal/delivery/http/router/handler"
	"chow/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RestaurantHandler *handler.RestaurantHandler
	OrderHandler      *handler.OrderHandler
	WalletHandler     *handler.WalletHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	orderHandler      *handler.OrderHandler
	walletHandler     *handler.WalletHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		restaurantHandler: params.RestaurantHandler,
		orderHandler:      params.OrderHandler,
		walletHandler:     params.WalletHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public browsing: confirmed restaurants and their menus.
	e.GET("/restaurants", r.restaurantHandler.ListRestaurants)
	e.GET("/restaurants/:id/menu", r.restaurantHandler.ListMenu)

	// Order routes shared by every authenticated role; each usecase narrows
	// visibility to the actor's own orders.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus)
	}

	// Customer routes: placing and paying for orders, wallet access.
	customerGroup := e.Group("/customer")
	customerGroup.Use(r.authMiddleware.Authenticate)
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.POST("/orders", r.orderHandler.CreateOrder)
		customerGroup.POST("/orders/:id/payment", r.walletHandler.PayOrder)
	}

	// Wallet routes for any authenticated user (settlements credit sellers
	// and couriers, so the ledger is not customer-only).
	walletGroup := e.Group("/wallet")
	walletGroup.Use(r.authMiddleware.Authenticate)
	{
		walletGroup.GET("", r.walletHandler.GetWallet)
		walletGroup.POST("/topup", r.walletHandler.TopUp)
		walletGroup.GET("/transactions", r.walletHandler.ListTransactions)
	}

	// Seller routes: restaurant and menu management, pickup QR codes.
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole(entity.RoleSeller))
	{
		sellerGroup.POST("/restaurants", r.restaurantHandler.CreateRestaurant)
		sellerGroup.GET("/restaurants", r.restaurantHandler.ListOwnRestaurants)
		sellerGroup.POST("/restaurants/:id/menu", r.restaurantHandler.AddFoodItem)
		sellerGroup.PUT("/menu/:itemId", r.restaurantHandler.UpdateFoodItem)
		sellerGroup.GET("/orders/:id/pickup-qr", r.orderHandler.PickupQR)
	}

	// Courier routes: claiming ready orders by scanned QR payload.
	courierGroup := e.Group("/courier")
	courierGroup.Use(r.authMiddleware.Authenticate)
	courierGroup.Use(r.authMiddleware.RequireRole(entity.RoleCourier))
	{
		courierGroup.POST("/orders/claim", r.orderHandler.ClaimOrder)
	}

	// Admin routes: approvals.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PATCH("/users/:id/approval", r.authHandler.ApproveUser)
		adminGroup.PATCH("/restaurants/:id/approval", r.restaurantHandler.ApproveRestaurant)
	}
}
