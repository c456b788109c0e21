package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// SearchCatalog runs a substring search over the product catalog.
// GET /v1/catalog/search?q=...&limit=...
func (h *Handler) SearchCatalog(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.QueryParam("q")

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 10
	}

	products, err := h.catalog.Search(ctx, term, limit)
	if err != nil {
		log.Printf("ERROR: catalog search failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "catalog search failed"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// GetRecommendations returns sale and new products.
// GET /v1/catalog/recommendations?limit=...
func (h *Handler) GetRecommendations(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 4
	}

	products, err := h.catalog.Recommend(ctx, limit)
	if err != nil {
		log.Printf("ERROR: catalog recommend failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "catalog recommend failed"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}
