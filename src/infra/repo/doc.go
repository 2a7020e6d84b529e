// Package repo runs choices queries against a ports.Pool.
//
// Execute is the only place a connection is checked out: it acquires one
// connection, runs the statement, maps every row to a domain.Choice and
// releases the connection on every exit path.
//
// Example:
//
//	choices, err := repo.Execute(ctx, pool, "SELECT sku, description FROM products")
package repo
