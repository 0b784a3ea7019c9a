// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chaski/internal/delivery/http/middleware"
	"chaski/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	WishlistHandler   *handler.WishlistHandler
	CheckoutHandler   *handler.CheckoutHandler
	MessagingHandler  *handler.MessagingHandler
	StreamHandler     *handler.StreamHandler
	ProfileHandler    *handler.ProfileHandler
	ObjectHandler     *handler.ObjectHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router RouterParams

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	r := router(params)

	return &r
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public object reads, the target of storage.publicBaseUrl
	e.GET("/storage/v1/object/public/:bucket/*", r.ObjectHandler.Serve)

	api := e.Group("/api")

	// Session routes
	auth := api.Group("/auth")
	{
		auth.GET("/session", r.SessionHandler.Current)
		auth.POST("/login", r.SessionHandler.Login)
		auth.POST("/register", r.SessionHandler.Register)
		auth.POST("/demo", r.SessionHandler.EnterDemo)
		auth.POST("/logout", r.SessionHandler.Logout)
		auth.GET("/login/:provider", r.SessionHandler.ProviderLogin)
		auth.GET("/callback/:provider", r.SessionHandler.ProviderCallback)
		auth.POST("/callback/:provider", r.SessionHandler.ProviderCallback)
	}

	// Public catalog routes
	api.GET("/stores", r.CatalogHandler.ListStores)
	api.GET("/stores/:id", r.CatalogHandler.GetStore)
	api.GET("/stores/:id/qr", r.CatalogHandler.StoreShareCode)
	api.GET("/products", r.CatalogHandler.ListProducts)
	api.GET("/products/:id", r.CatalogHandler.GetProduct)
	api.GET("/products/:id/owner", r.CatalogHandler.ProductOwner)
	api.POST("/catalog/refresh", r.CatalogHandler.Refresh)
	api.GET("/profiles/:id", r.ProfileHandler.Get)

	// Routes available to every identity, demo included
	session := api.Group("", r.SessionMiddleware.RequireSession)
	{
		session.GET("/cart", r.CartHandler.Get)
		session.POST("/cart/items", r.CartHandler.AddItem)
		session.PATCH("/cart/items/:productId", r.CartHandler.UpdateItem)
		session.DELETE("/cart/items/:productId", r.CartHandler.RemoveItem)
		session.DELETE("/cart", r.CartHandler.Clear)

		session.GET("/wishlist", r.WishlistHandler.List)
		session.POST("/wishlist/:productId/toggle", r.WishlistHandler.Toggle)

		session.GET("/checkout", r.CheckoutHandler.Summary)
		session.POST("/checkout", r.CheckoutHandler.PlaceOrder)
		session.GET("/orders", r.CheckoutHandler.Orders)
	}

	// Routes that need a remote account
	account := api.Group("", r.SessionMiddleware.RequireSession, r.SessionMiddleware.RejectDemo)
	{
		account.PATCH("/me", r.SessionHandler.UpdateProfile)
		account.PUT("/me/password", r.SessionHandler.UpdatePassword)

		account.GET("/me/stores", r.CatalogHandler.MyStores)
		account.GET("/me/products", r.CatalogHandler.MyProducts)
		account.POST("/stores", r.CatalogHandler.CreateStore)
		account.PATCH("/stores/:id", r.CatalogHandler.UpdateStore)
		account.POST("/products", r.CatalogHandler.CreateProduct)
		account.PATCH("/products/:id", r.CatalogHandler.UpdateProduct)
		account.DELETE("/products/:id", r.CatalogHandler.DeactivateProduct)

		account.GET("/profiles/:id/rating", r.ProfileHandler.MyRating)
		account.POST("/ratings", r.ProfileHandler.SubmitRating)

		account.GET("/conversations", r.MessagingHandler.Conversations)
		account.POST("/conversations", r.MessagingHandler.CreateConversation)
		account.GET("/conversations/unread", r.MessagingHandler.Unread)
		account.GET("/conversations/:id/messages", r.MessagingHandler.Messages)
		account.POST("/conversations/:id/messages", r.MessagingHandler.Send)
		account.DELETE("/conversations/current", r.MessagingHandler.CloseCurrent)
		account.GET("/messages/stream", r.StreamHandler.Messages)
	}
}
