package db

import (
	"context"
	"log/slog"
	"strings"

	"choicefetch/src/core/domain"
	"choicefetch/src/core/ports"
)

const (
	// DefaultMinConns is the number of connections kept open while idle.
	DefaultMinConns = 1

	// DefaultMaxConns is the upper bound on live connections.
	DefaultMaxConns = 8
)

// Driver identifies the backend selected by a connection string.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DetectDriver picks the backend from the connection string scheme.
func DetectDriver(dsn string) (Driver, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case lower == "":
		return "", domain.NewConfigurationError("connection string is empty", nil)
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "file:"):
		return DriverSQLite, nil
	default:
		return "", domain.NewConfigurationError("unsupported connection string scheme", nil)
	}
}

// Open creates the pool matching the connection string and verifies it with a ping.
func Open(ctx context.Context, dsn string, log *slog.Logger) (ports.Pool, error) {
	driver, err := DetectDriver(dsn)
	if err != nil {
		return nil, err
	}

	// Typed nil pointers must not escape as non-nil ports.Pool values.
	if driver == DriverPostgres {
		pool, err := OpenPostgres(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return pool, nil
	}
	pool, err := OpenSQLite(ctx, dsn, log)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
