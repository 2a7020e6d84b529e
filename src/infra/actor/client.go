package actor

import (
	"context"
	"log/slog"

	"choicefetch/src/core/domain"
	"choicefetch/src/core/ports"
	"choicefetch/src/infra/db"
	"choicefetch/src/infra/logger"
)

// Client is the handle callers use to reach the worker. It is safe for
// concurrent use; every copy of the pointer feeds the same worker.
type Client struct {
	queue  *RequestChannel
	worker *Worker
	log    *slog.Logger
}

var (
	_ ports.ChoiceFetcher = (*Client)(nil)
	_ ports.Reporter      = (*Client)(nil)
)

// Options configures a Client. The zero value uses DefaultQueueCapacity and
// discards logs.
type Options struct {
	// QueueCapacity bounds the request queue (default: DefaultQueueCapacity)
	QueueCapacity int

	// Log receives client and worker logs
	Log *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.QueueCapacity < 1 {
		o.QueueCapacity = DefaultQueueCapacity
	}
	if o.Log == nil {
		o.Log = logger.Discard()
	}
	return o
}

// New opens the pool for dsn and starts the worker that will own it.
// Pool construction failures are returned here and are fatal for the client.
func New(ctx context.Context, dsn string, opts Options) (*Client, error) {
	o := opts.withDefaults()
	log := logger.WithComponent(o.Log, "db")
	return start(ctx, func(ctx context.Context) (ports.Pool, error) {
		return db.Open(ctx, dsn, log)
	}, o)
}

// NewWithPool starts a worker that takes ownership of pool. The caller must not
// use pool afterwards; it is closed when the client closes.
func NewWithPool(pool ports.Pool, opts Options) *Client {
	c, _ := start(context.Background(), func(context.Context) (ports.Pool, error) {
		return pool, nil
	}, opts.withDefaults())
	return c
}

func start(ctx context.Context, open OpenFunc, o Options) (*Client, error) {
	queue := NewRequestChannel(o.QueueCapacity)
	w, err := StartWorker(ctx, open, queue, logger.WithComponent(o.Log, "worker"))
	if err != nil {
		return nil, err
	}
	return &Client{
		queue:  queue,
		worker: w,
		log:    logger.WithComponent(o.Log, "client"),
	}, nil
}

// FetchChoices enqueues query and returns a Future for its rows. The enqueue
// waits while the queue is full; it fails immediately with domain.ErrShutdown
// once the client is closed, or with ctx.Err() if ctx ends first.
func (c *Client) FetchChoices(ctx context.Context, query domain.Query) (*Future, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return c.enqueue(ctx, kindQuery, query)
}

// Choices runs query and waits for its rows.
func (c *Client) Choices(ctx context.Context, query domain.Query) ([]domain.Choice, error) {
	f, err := c.FetchChoices(ctx, query)
	if err != nil {
		return nil, err
	}
	return f.Await(ctx)
}

// Health pings the database through the worker queue, so it also reports a
// worker that is stuck or gone.
func (c *Client) Health(ctx context.Context) error {
	f, err := c.enqueue(ctx, kindPing, "")
	if err != nil {
		return err
	}
	_, err = f.Await(ctx)
	return err
}

// Stats reports worker counters, queue depth and pool usage.
func (c *Client) Stats() WorkerStats {
	return c.worker.Stats()
}

// Close stops intake and waits for queued requests to drain; see Worker.Stop.
func (c *Client) Close(ctx context.Context) error {
	c.log.Info("closing client", "queued", c.queue.Len())
	return c.worker.Stop(ctx)
}

func (c *Client) enqueue(ctx context.Context, kind requestKind, query domain.Query) (*Future, error) {
	req := newRequest(ctx, kind, query)
	if err := c.queue.Send(ctx, req); err != nil {
		return nil, err
	}
	return newFuture(req, c.worker.Done()), nil
}

// Report implements ports.Reporter.
func (c *Client) Report() map[string]any {
	s := c.Stats()
	return map[string]any{
		"worker_state":   s.State,
		"queue_length":   s.QueueLength,
		"queue_capacity": s.QueueCapacity,
		"processed":      s.Processed,
		"failed":         s.Failed,
		"pool":           s.Pool,
	}
}
