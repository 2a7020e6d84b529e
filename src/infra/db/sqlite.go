package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"choicefetch/src/core/domain"
	"choicefetch/src/core/ports"
)

// SQLite wraps a database/sql handle on modernc.org/sqlite and adapts it to ports.Pool.
type SQLite struct {
	DB   *sql.DB
	path string
	log  *slog.Logger
}

var _ ports.Pool = (*SQLite)(nil)

// SQLitePath strips the sqlite:// scheme; file: URIs are passed to the driver unchanged.
func SQLitePath(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if len(dsn) >= len("sqlite://") && strings.EqualFold(dsn[:len("sqlite://")], "sqlite://") {
		return dsn[len("sqlite://"):]
	}
	return dsn
}

// OpenSQLite opens a SQLite database and verifies it with a ping.
func OpenSQLite(ctx context.Context, dsn string, log *slog.Logger) (*SQLite, error) {
	path := SQLitePath(dsn)
	if path == "" {
		return nil, domain.NewConfigurationError("sqlite path is empty", nil)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, domain.NewConfigurationError("failed to open sqlite database", err)
	}

	db.SetMaxOpenConns(DefaultMaxConns)
	db.SetMaxIdleConns(DefaultMinConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, domain.NewConnectionError(fmt.Errorf("failed to ping database: %w", err))
	}

	log.Info("database connection established",
		"driver", DriverSQLite,
		"path", path,
	)

	return &SQLite{DB: db, path: path, log: log}, nil
}

// Acquire checks out a dedicated connection; database/sql waits while all are busy.
func (s *SQLite) Acquire(ctx context.Context) (ports.Conn, error) {
	conn, err := s.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return sqlConn{conn: conn}, nil
}

// Ping checks if the database is reachable.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Stat reports pool usage.
func (s *SQLite) Stat() domain.PoolStats {
	st := s.DB.Stats()
	return domain.PoolStats{
		TotalConns:    int32(st.OpenConnections),
		IdleConns:     int32(st.Idle),
		AcquiredConns: int32(st.InUse),
		MaxConns:      int32(st.MaxOpenConnections),
	}
}

// Close closes the database handle.
func (s *SQLite) Close() {
	if s.DB == nil {
		return
	}
	if err := s.DB.Close(); err != nil {
		s.log.Warn("failed to close database", "driver", DriverSQLite, "error", err)
		return
	}
	s.log.Info("database connection closed", "driver", DriverSQLite)
}

type sqlConn struct {
	conn *sql.Conn
}

func (c sqlConn) Query(ctx context.Context, query string) (ports.Rows, error) {
	rows, err := c.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return sqlRows{Rows: rows}, nil
}

func (c sqlConn) Release() {
	_ = c.conn.Close()
}

// sqlRows adapts *sql.Rows, whose Close returns an error, to ports.Rows.
type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}
