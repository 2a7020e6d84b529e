// Package dbtest provides in-memory ports.Pool fakes and SQLite fixtures for tests.
package dbtest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"choicefetch/src/core/domain"
	"choicefetch/src/core/ports"
)

// Row is one fake result row. A nil field is a SQL NULL.
type Row []*string

// Text returns a pointer to s, for building rows.
func Text(s string) *string {
	return &s
}

// Result is the canned outcome of one statement.
type Result struct {
	Rows     []Row
	QueryErr error
	// IterErr is reported by Rows.Err after all rows have been read.
	IterErr error
	// Gate, when non-nil, blocks Query until it is closed or ctx is done.
	Gate chan struct{}
	// Panic, when non-empty, makes Query panic with this value.
	Panic string
}

// Pool is a ports.Pool serving canned results keyed by statement text.
type Pool struct {
	mu         sync.Mutex
	results    map[string]Result
	acquireErr error
	queries    []string
	acquired   int
	released   int
	closed     bool
	started    chan string
}

var _ ports.Pool = (*Pool)(nil)

// NewPool returns an empty fake pool.
func NewPool() *Pool {
	return &Pool{
		results: make(map[string]Result),
		started: make(chan string, 64),
	}
}

// On registers the result for a statement.
func (p *Pool) On(query string, res Result) *Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results[query] = res
	return p
}

// FailAcquire makes every following Acquire fail with err.
func (p *Pool) FailAcquire(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquireErr = err
}

// Started receives each statement as its execution begins.
func (p *Pool) Started() <-chan string {
	return p.started
}

// Queries returns the statements executed so far, in order.
func (p *Pool) Queries() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.queries...)
}

// Outstanding is the number of acquired connections not yet released.
func (p *Pool) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquired - p.released
}

// Closed reports whether Close was called.
func (p *Pool) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *Pool) Acquire(ctx context.Context) (ports.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, errors.New("pool closed")
	}
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return &conn{pool: p}, nil
}

func (p *Pool) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("pool closed")
	}
	return p.acquireErr
}

func (p *Pool) Stat() domain.PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.PoolStats{
		TotalConns:    1,
		AcquiredConns: int32(p.acquired - p.released),
		IdleConns:     int32(1 - (p.acquired - p.released)),
		MaxConns:      1,
	}
}

func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

type conn struct {
	pool     *Pool
	released bool
}

func (c *conn) Query(ctx context.Context, query string) (ports.Rows, error) {
	c.pool.mu.Lock()
	res, ok := c.pool.results[query]
	c.pool.queries = append(c.pool.queries, query)
	c.pool.mu.Unlock()

	select {
	case c.pool.started <- query:
	default:
	}

	if res.Gate != nil {
		select {
		case <-res.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if res.Panic != "" {
		panic(res.Panic)
	}
	if !ok {
		return nil, fmt.Errorf("no such table in %q", query)
	}
	if res.QueryErr != nil {
		return nil, res.QueryErr
	}
	return &rows{rows: res.Rows, iterErr: res.IterErr, pos: -1}, nil
}

func (c *conn) Release() {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	if c.released {
		panic("dbtest: connection released twice")
	}
	c.released = true
	c.pool.released++
}

type rows struct {
	rows    []Row
	iterErr error
	pos     int
	closed  bool
}

func (r *rows) Next() bool {
	if r.closed || r.pos+1 >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *rows) Scan(dest ...any) error {
	row := r.rows[r.pos]
	if len(dest) != len(row) {
		return fmt.Errorf("expected %d destination arguments in Scan, not %d", len(row), len(dest))
	}
	for i, d := range dest {
		target, ok := d.(**string)
		if !ok {
			return fmt.Errorf("unsupported scan type %T", d)
		}
		if row[i] == nil {
			*target = nil
			continue
		}
		v := *row[i]
		*target = &v
	}
	return nil
}

func (r *rows) Err() error {
	if r.pos+1 >= len(r.rows) {
		return r.iterErr
	}
	return nil
}

func (r *rows) Close() {
	r.closed = true
}
