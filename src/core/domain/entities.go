package domain

import "strings"

// Query is an immutable SQL statement returning (identifier, description) rows.
// Go strings share their backing array, so a Query can be handed to any number
// of in-flight requests without copying.
type Query string

// String returns the statement text.
func (q Query) String() string {
	return string(q)
}

// Validate rejects blank statements before they reach the worker queue.
func (q Query) Validate() error {
	if strings.TrimSpace(string(q)) == "" {
		return NewValidationError("query", "cannot be empty")
	}
	return nil
}

// Choice is a single (identifier, description) result row.
// ID is always present; Description is empty when the backing column is NULL.
type Choice struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// PoolStats is a driver-neutral snapshot of connection pool usage.
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
}
