// Package catalog provides read-only access to the storefront's product
// collection.
package catalog

import (
	"context"

	"github.com/globalantic/globot/domain"
)

// Catalog is the read-only query surface the assistant sees. An empty
// catalog yields empty results, never an error.
type Catalog interface {
	// Search returns products whose name, category or description contains
	// term (case-insensitive), in stable catalog order, truncated to limit.
	// An empty term matches every product.
	Search(ctx context.Context, term string, limit int) ([]domain.Product, error)

	// Recommend returns products that are on sale or new, in stable
	// catalog order, truncated to limit.
	Recommend(ctx context.Context, limit int) ([]domain.Product, error)

	// All returns every product in catalog order.
	All(ctx context.Context) ([]domain.Product, error)

	Close() error
}
