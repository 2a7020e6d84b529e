// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/db. The executor and worker only ever see these interfaces,
// which keeps the driver a black box offering acquire, query and release.
package ports

import (
	"context"

	"choicefetch/src/core/domain"
)

// Rows is a forward-only cursor over a query result.
// pgx.Rows satisfies it directly; database/sql rows are adapted.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Conn is a connection checked out of a Pool.
// Release must be called exactly once to return it.
type Conn interface {
	Query(ctx context.Context, sql string) (Rows, error)
	Release()
}

// Pool is a bounded set of live database connections.
type Pool interface {
	// Acquire checks out a connection, waiting per the pool's own policy when exhausted.
	Acquire(ctx context.Context) (Conn, error)

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error

	// Stat reports current pool usage.
	Stat() domain.PoolStats

	// Close releases every connection. The pool is unusable afterwards.
	Close()
}
