package api

import (
	"net/http"

	"github.com/globalantic/globot/shop"
	"github.com/labstack/echo/v4"
)

// The cart and wishlist endpoints are a thin storefront surface over the
// item stores. The assistant itself only ever reads their counts.

// ItemRequest is the body for adding a cart or wishlist item.
type ItemRequest struct {
	ProductID string `json:"product_id"`
}

// GetCart returns the cart item count.
// GET /v1/cart
func (h *Handler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"item_count": h.cart.ItemCount()})
}

// AddCartItem puts a product in the cart.
// POST /v1/cart/items
func (h *Handler) AddCartItem(c echo.Context) error {
	return addItem(c, h.cart)
}

// RemoveCartItem takes a product out of the cart.
// DELETE /v1/cart/items/:product_id
func (h *Handler) RemoveCartItem(c echo.Context) error {
	h.cart.Remove(c.Param("product_id"))
	return c.NoContent(http.StatusNoContent)
}

// GetWishlist returns the wishlist item count.
// GET /v1/wishlist
func (h *Handler) GetWishlist(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"item_count": h.wishlist.ItemCount()})
}

// AddWishlistItem puts a product in the wishlist.
// POST /v1/wishlist/items
func (h *Handler) AddWishlistItem(c echo.Context) error {
	return addItem(c, h.wishlist)
}

// RemoveWishlistItem takes a product out of the wishlist.
// DELETE /v1/wishlist/items/:product_id
func (h *Handler) RemoveWishlistItem(c echo.Context) error {
	h.wishlist.Remove(c.Param("product_id"))
	return c.NoContent(http.StatusNoContent)
}

func addItem(c echo.Context, store *shop.ItemStore) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "product_id is required"})
	}

	store.Add(req.ProductID)
	return c.JSON(http.StatusOK, map[string]int{"item_count": store.ItemCount()})
}
