// Package db provides the connection pools the choices worker runs on.
//
// This package is responsible for:
//   - PostgreSQL pool initialization over pgxpool
//   - SQLite pool initialization over database/sql and modernc.org/sqlite
//   - Adapting both to ports.Pool so the executor never sees a driver type
//   - Connection health checks and pool statistics
//
// Pool sizing is a fixed policy: at least DefaultMinConns and at most
// DefaultMaxConns live connections.
//
// Example usage:
//
//	pool, err := db.Open(ctx, cfg.Database.DSN, log)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
package db
