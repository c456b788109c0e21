package catalog

import (
	"context"
	"testing"
)

func newTestCatalog(t *testing.T) *SQLiteCatalog {
	t.Helper()
	c, err := NewSQLiteCatalog(":memory:")
	if err != nil {
		t.Fatalf("failed to open catalog: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSQLiteSearchCaseInsensitive(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	for _, term := range []string{"running", "RUNNING", "Running"} {
		products, err := c.Search(ctx, term, 0)
		if err != nil {
			t.Fatalf("search %q failed: %v", term, err)
		}
		if len(products) != 1 {
			t.Fatalf("search %q returned %d products, want 1", term, len(products))
		}
		if products[0].Name != "Running Shoes Pro" {
			t.Errorf("search %q returned %q, want Running Shoes Pro", term, products[0].Name)
		}
	}
}

func TestSQLiteSearchMatchesCategoryAndDescription(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	// Category match, in catalog order.
	products, err := c.Search(ctx, "footwear", 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	want := []string{"prod_001", "prod_002", "prod_012"}
	if len(products) != len(want) {
		t.Fatalf("got %d footwear products, want %d", len(products), len(want))
	}
	for i, id := range want {
		if products[i].ProductID != id {
			t.Errorf("product %d: got %s, want %s", i, products[i].ProductID, id)
		}
	}

	// Description match.
	products, err = c.Search(ctx, "noise cancelling", 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 1 || products[0].ProductID != "prod_003" {
		t.Errorf("description search returned %+v, want prod_003", products)
	}
}

func TestSQLiteSearchNoMatches(t *testing.T) {
	c := newTestCatalog(t)

	products, err := c.Search(context.Background(), "zzz-no-such-term", 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("got %d products, want none", len(products))
	}
}

func TestSQLiteSearchEmptyTermMatchesAll(t *testing.T) {
	c := newTestCatalog(t)

	products, err := c.Search(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != len(seedProducts) {
		t.Errorf("got %d products, want %d", len(products), len(seedProducts))
	}
}

func TestSQLiteSearchLimit(t *testing.T) {
	c := newTestCatalog(t)

	products, err := c.Search(context.Background(), "footwear", 2)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].ProductID != "prod_001" {
		t.Errorf("limit must keep catalog order, got %s first", products[0].ProductID)
	}
}

func TestSQLiteRecommend(t *testing.T) {
	c := newTestCatalog(t)

	products, err := c.Recommend(context.Background(), 4)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("got %d products, want 4", len(products))
	}
	for _, p := range products {
		if !p.IsSale && !p.IsNew {
			t.Errorf("product %s is neither on sale nor new", p.ProductID)
		}
	}
	if products[0].ProductID != "prod_001" {
		t.Errorf("recommendations must keep catalog order, got %s first", products[0].ProductID)
	}
}

func TestSQLiteAll(t *testing.T) {
	c := newTestCatalog(t)

	products, err := c.All(context.Background())
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(products) != len(seedProducts) {
		t.Fatalf("got %d products, want %d", len(products), len(seedProducts))
	}
	for i, p := range products {
		if p.ProductID != seedProducts[i].ProductID {
			t.Errorf("product %d: got %s, want %s", i, p.ProductID, seedProducts[i].ProductID)
		}
	}
}

func TestSQLiteSeedIdempotent(t *testing.T) {
	c := newTestCatalog(t)

	if err := c.seed(); err != nil {
		t.Fatalf("reseed failed: %v", err)
	}
	products, err := c.All(context.Background())
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(products) != len(seedProducts) {
		t.Errorf("reseed duplicated rows: got %d products, want %d", len(products), len(seedProducts))
	}
}
