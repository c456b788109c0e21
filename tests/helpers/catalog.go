// Package helpers provides shared test fixtures.
package helpers

import (
	"testing"

	"github.com/globalantic/globot/catalog"
)

// NewTestCatalog returns a seeded in-memory sqlite catalog.
func NewTestCatalog(t *testing.T) *catalog.SQLiteCatalog {
	t.Helper()

	c, err := catalog.NewSQLiteCatalog(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite catalog: %v", err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}
