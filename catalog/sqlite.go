package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/globalantic/globot/domain"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCatalog implements Catalog using SQLite.
type SQLiteCatalog struct {
	db *sql.DB
}

// NewSQLiteCatalog opens (or creates) the catalog database and seeds the
// storefront product set on first run.
func NewSQLiteCatalog(dsn string) (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	c := &SQLiteCatalog{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := c.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	return c, nil
}

// migrate runs database migrations.
func (c *SQLiteCatalog) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS products (
			product_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL,
			price REAL NOT NULL,
			original_price REAL,
			rating REAL NOT NULL DEFAULT 0,
			is_sale INTEGER NOT NULL DEFAULT 0,
			is_new INTEGER NOT NULL DEFAULT 0,
			image TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_flags ON products(is_sale, is_new)`,
	}

	for _, m := range migrations {
		if _, err := c.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// seed inserts the storefront product set. Existing rows are left alone so
// a restarted service keeps catalog order stable.
func (c *SQLiteCatalog) seed() error {
	for _, p := range seedProducts {
		var originalPrice sql.NullFloat64
		if p.OriginalPrice > 0 {
			originalPrice = sql.NullFloat64{Float64: p.OriginalPrice, Valid: true}
		}
		_, err := c.db.Exec(
			`INSERT OR IGNORE INTO products (product_id, name, category, description, price, original_price, rating, is_sale, is_new, image)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ProductID, p.Name, p.Category, p.Description, p.Price, originalPrice, p.Rating, p.IsSale, p.IsNew, p.Image)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

const productColumns = `product_id, name, category, description, price, original_price, rating, is_sale, is_new, image`

// Search returns products matching term, in rowid (catalog) order.
func (c *SQLiteCatalog) Search(ctx context.Context, term string, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE lower(name) LIKE '%' || lower(?) || '%'
		   OR lower(category) LIKE '%' || lower(?) || '%'
		   OR lower(description) LIKE '%' || lower(?) || '%'
		ORDER BY rowid ASC`
	args := []interface{}{term, term, term}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	return c.queryProducts(ctx, query, args...)
}

// Recommend returns sale or new products, in rowid (catalog) order.
func (c *SQLiteCatalog) Recommend(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE is_sale = 1 OR is_new = 1
		ORDER BY rowid ASC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	return c.queryProducts(ctx, query)
}

// All returns every product in catalog order.
func (c *SQLiteCatalog) All(ctx context.Context) ([]domain.Product, error) {
	return c.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY rowid ASC`)
}

func (c *SQLiteCatalog) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var originalPrice sql.NullFloat64
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Category, &p.Description, &p.Price, &originalPrice, &p.Rating, &p.IsSale, &p.IsNew, &p.Image); err != nil {
			return nil, err
		}
		if originalPrice.Valid {
			p.OriginalPrice = originalPrice.Float64
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
