// Package api provides the HTTP surface of the assistant service.
package api

import (
	"net/http"

	"github.com/globalantic/globot/assistant"
	"github.com/globalantic/globot/catalog"
	"github.com/globalantic/globot/config"
	"github.com/globalantic/globot/hub"
	"github.com/globalantic/globot/shop"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests.
type Handler struct {
	assistant *assistant.Manager
	catalog   catalog.Catalog
	cart      *shop.ItemStore
	wishlist  *shop.ItemStore
	hub       *hub.Hub
	config    *config.Config
}

// NewHandler creates a new handler.
func NewHandler(mgr *assistant.Manager, cat catalog.Catalog, cart, wishlist *shop.ItemStore, h *hub.Hub, cfg *config.Config) *Handler {
	return &Handler{
		assistant: mgr,
		catalog:   cat,
		cart:      cart,
		wishlist:  wishlist,
		hub:       h,
		config:    cfg,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Conversation API
	e.POST("/v1/sessions", h.OpenSession)
	e.DELETE("/v1/sessions/:session_id", h.CloseSession)
	e.GET("/v1/sessions/:session_id/messages", h.GetSessionMessages)
	e.POST("/v1/sessions/:session_id/messages", h.SubmitMessage)
	e.POST("/v1/sessions/:session_id/suggestions", h.SelectSuggestion)

	// Catalog API
	e.GET("/v1/catalog/search", h.SearchCatalog)
	e.GET("/v1/catalog/recommendations", h.GetRecommendations)

	// Cart / wishlist API
	e.GET("/v1/cart", h.GetCart)
	e.POST("/v1/cart/items", h.AddCartItem)
	e.DELETE("/v1/cart/items/:product_id", h.RemoveCartItem)
	e.GET("/v1/wishlist", h.GetWishlist)
	e.POST("/v1/wishlist/items", h.AddWishlistItem)
	e.DELETE("/v1/wishlist/items/:product_id", h.RemoveWishlistItem)

	// Live message stream
	e.GET("/v1/ws", h.ServeWS)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"version":     "0.1.0",
		"connections": h.hub.ConnectionCount(),
	})
}
