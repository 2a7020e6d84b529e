package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"choicefetch/src/core/domain"
	"choicefetch/src/core/ports"
)

// Postgres wraps a pgx connection pool and adapts it to ports.Pool.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

var _ ports.Pool = (*Postgres)(nil)

// OpenPostgres creates a new PostgreSQL connection pool.
// It validates the connection by pinging the database.
func OpenPostgres(ctx context.Context, dsn string, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, domain.NewConfigurationError("failed to parse database config", err)
	}

	poolCfg.MinConns = DefaultMinConns
	poolCfg.MaxConns = DefaultMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, domain.NewConnectionError(fmt.Errorf("failed to ping database: %w", err))
	}

	log.Info("database connection established",
		"driver", DriverPostgres,
		"host", poolCfg.ConnConfig.Host,
		"port", poolCfg.ConnConfig.Port,
		"database", poolCfg.ConnConfig.Database,
	)

	return &Postgres{
		Pool: pool,
		log:  log,
	}, nil
}

// Acquire checks out a connection; pgxpool waits while all MaxConns are busy.
func (p *Postgres) Acquire(ctx context.Context) (ports.Conn, error) {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return pgConn{conn: conn}, nil
}

// Ping checks if the database is reachable.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

// Stat reports pool usage.
func (p *Postgres) Stat() domain.PoolStats {
	s := p.Pool.Stat()
	return domain.PoolStats{
		TotalConns:    s.TotalConns(),
		IdleConns:     s.IdleConns(),
		AcquiredConns: s.AcquiredConns(),
		MaxConns:      s.MaxConns(),
	}
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
		p.log.Info("database connection closed", "driver", DriverPostgres)
	}
}

type pgConn struct {
	conn *pgxpool.Conn
}

func (c pgConn) Query(ctx context.Context, sql string) (ports.Rows, error) {
	return c.conn.Query(ctx, sql)
}

func (c pgConn) Release() {
	c.conn.Release()
}
