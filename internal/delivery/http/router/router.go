// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	ProfileHandler  *handler.ProfileHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	profileHandler  *handler.ProfileHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		profileHandler:  params.ProfileHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog browsing is public: no account is needed to look around.
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	// Everything below acts on the caller's own data.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.AdjustQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
	}

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/receipt", r.orderHandler.GetOrderReceipt)
	}

	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.DELETE("", r.profileHandler.DeleteProfile)
	}
}

// RegisterTestRoutes sets up the middleware validation routes.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
