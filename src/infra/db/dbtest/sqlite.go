package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"choicefetch/src/infra/db"
	"choicefetch/src/infra/logger"
)

// Product is a fixture row for the products table. A nil Description is stored as NULL.
type Product struct {
	SKU         *string
	Description *string
}

// SeedProducts creates a SQLite database file holding a products(sku, description)
// table filled with rows and returns its sqlite:// connection string.
func SeedProducts(t testing.TB, products ...Product) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake_data.db")
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`CREATE TABLE products (sku TEXT, description TEXT)`)
	require.NoError(t, err)

	for _, p := range products {
		_, err := conn.Exec(`INSERT INTO products (sku, description) VALUES (?, ?)`, p.SKU, p.Description)
		require.NoError(t, err)
	}

	return "sqlite://" + path
}

// OpenSQLite opens dsn through db.OpenSQLite and closes it when the test ends.
func OpenSQLite(t testing.TB, dsn string) *db.SQLite {
	t.Helper()

	pool, err := db.OpenSQLite(context.Background(), dsn, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}
