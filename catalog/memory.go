package catalog

import (
	"context"
	"strings"

	"github.com/globalantic/globot/domain"
)

// MemoryCatalog is an in-memory Catalog, used for fixtures and tests.
type MemoryCatalog struct {
	products []domain.Product
}

// NewMemoryCatalog returns a catalog over the given products. Slice order
// is the catalog order.
func NewMemoryCatalog(products ...domain.Product) *MemoryCatalog {
	return &MemoryCatalog{products: products}
}

// Search returns products matching term, in catalog order.
func (c *MemoryCatalog) Search(ctx context.Context, term string, limit int) ([]domain.Product, error) {
	term = strings.ToLower(term)
	var matched []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			matched = append(matched, p)
			if limit > 0 && len(matched) == limit {
				break
			}
		}
	}
	return matched, nil
}

// Recommend returns sale or new products, in catalog order.
func (c *MemoryCatalog) Recommend(ctx context.Context, limit int) ([]domain.Product, error) {
	var matched []domain.Product
	for _, p := range c.products {
		if p.IsSale || p.IsNew {
			matched = append(matched, p)
			if limit > 0 && len(matched) == limit {
				break
			}
		}
	}
	return matched, nil
}

// All returns every product in catalog order.
func (c *MemoryCatalog) All(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// Close is a no-op.
func (c *MemoryCatalog) Close() error {
	return nil
}
