package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"choicefetch/src/core/domain"
	"choicefetch/src/core/ports"
	"choicefetch/src/infra/logger"
	"choicefetch/src/infra/repo"
)

// State is the lifecycle stage of a Worker.
type State int32

const (
	StateStarting State = iota
	StateRunning
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// OpenFunc builds the pool the worker will own.
type OpenFunc func(ctx context.Context) (ports.Pool, error)

// Worker is the only goroutine allowed to use its pool. It processes requests
// one at a time in dequeue order.
type Worker struct {
	pool  ports.Pool
	queue *RequestChannel
	log   *slog.Logger

	state     atomic.Int32
	processed atomic.Int64
	failed    atomic.Int64

	// runCtx is cancelled to abort an in-flight query when Stop runs out of time.
	runCtx context.Context
	abort  context.CancelFunc
	done   chan struct{}
}

// StartWorker opens the pool and starts the run loop on its own goroutine.
// A pool that cannot be opened is returned as an error and no goroutine is started.
func StartWorker(ctx context.Context, open OpenFunc, queue *RequestChannel, log *slog.Logger) (*Worker, error) {
	w := &Worker{
		queue: queue,
		log:   log,
		done:  make(chan struct{}),
	}
	w.state.Store(int32(StateStarting))

	pool, err := open(ctx)
	if err != nil {
		w.state.Store(int32(StateStopped))
		close(w.done)
		return nil, err
	}
	w.pool = pool

	// Detached from ctx: the worker outlives the call that started it.
	w.runCtx, w.abort = context.WithCancel(context.Background())

	w.state.Store(int32(StateRunning))
	go w.run()

	w.log.Info("worker started", "queue_capacity", queue.Cap())
	return w, nil
}

// State returns the current lifecycle stage.
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Done is closed after the loop has exited and the pool is closed.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Stop closes intake and lets the worker drain queued requests. Enqueues still
// blocked on a full queue fail with domain.ErrShutdown. If ctx ends
// first, the in-flight query is cancelled and every remaining request fails
// with domain.ErrShutdown; Stop then returns ctx.Err().
func (w *Worker) Stop(ctx context.Context) error {
	w.state.CompareAndSwap(int32(StateRunning), int32(StateDraining))
	w.queue.Close()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.log.Warn("drain timed out, aborting queued requests", "queued", w.queue.Len())
		w.abort()
		<-w.done
		return ctx.Err()
	}
}

func (w *Worker) run() {
	defer func() {
		w.abort()
		w.pool.Close()
		w.state.Store(int32(StateStopped))
		close(w.done)
		w.log.Info("worker stopped",
			"processed", w.processed.Load(),
			"failed", w.failed.Load(),
		)
	}()

	for {
		req, ok := w.queue.Receive()
		if !ok {
			return
		}
		if w.runCtx.Err() != nil {
			w.failed.Add(1)
			req.fulfill(nil, domain.ErrShutdown)
			continue
		}
		w.handle(req)
	}
}

// handle processes one request. Any error or panic is confined to req.
func (w *Worker) handle(req *Request) {
	start := time.Now()
	log := logger.WithRequestID(w.log, req.ID.String()).With("kind", req.kind.String())
	if caller := logger.RequestIDFromContext(req.ctx); caller != "" {
		log = log.With("caller_request_id", caller)
	}

	defer func() {
		if r := recover(); r != nil {
			w.failed.Add(1)
			log.Error("request panicked", "panic", r)
			req.fulfill(nil, domain.NewReplyCancelledError(fmt.Sprintf("worker panic: %v", r)))
		}
	}()

	if err := req.ctx.Err(); err != nil {
		w.failed.Add(1)
		log.Debug("caller gave up before execution", "error", err)
		req.fulfill(nil, err)
		return
	}

	ctx, cancel := context.WithCancel(w.runCtx)
	defer cancel()
	stop := context.AfterFunc(req.ctx, cancel)
	defer stop()

	var (
		choices []domain.Choice
		err     error
	)
	switch req.kind {
	case kindPing:
		if err = w.pool.Ping(ctx); err != nil {
			err = domain.NewConnectionError(err)
		}
	default:
		choices, err = repo.Execute(ctx, w.pool, req.Query)
	}

	if err != nil && w.runCtx.Err() != nil {
		err = &domain.DomainError{Base: domain.ErrShutdown, Message: "aborted in flight", Err: err}
	}

	w.processed.Add(1)
	if err != nil {
		w.failed.Add(1)
		level := slog.LevelError
		if errors.Is(err, context.Canceled) && req.ctx.Err() != nil {
			level = slog.LevelDebug
		}
		log.Log(ctx, level, "request failed",
			"query", req.Query.String(),
			"duration", time.Since(start),
			"error", err,
		)
		req.fulfill(nil, err)
		return
	}

	log.Debug("request completed",
		"rows", len(choices),
		"wait", start.Sub(req.Enqueued),
		"duration", time.Since(start),
	)
	req.fulfill(choices, nil)
}

// WorkerStats is a point-in-time view of the worker.
type WorkerStats struct {
	State         string           `json:"state"`
	QueueLength   int              `json:"queue_length"`
	QueueCapacity int              `json:"queue_capacity"`
	Processed     int64            `json:"processed"`
	Failed        int64            `json:"failed"`
	Pool          domain.PoolStats `json:"pool"`
}

// Stats reports counters, queue depth and pool usage.
func (w *Worker) Stats() WorkerStats {
	return WorkerStats{
		State:         w.State().String(),
		QueueLength:   w.queue.Len(),
		QueueCapacity: w.queue.Cap(),
		Processed:     w.processed.Load(),
		Failed:        w.failed.Load(),
		Pool:          w.pool.Stat(),
	}
}
