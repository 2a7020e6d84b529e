package actor

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"choicefetch/src/core/domain"
)

// Future is the caller's side of a reply slot. It is safe for concurrent use.
type Future struct {
	req        *Request
	workerDone <-chan struct{}

	once     sync.Once
	resolved chan struct{}
	res      result
}

func newFuture(req *Request, workerDone <-chan struct{}) *Future {
	return &Future{
		req:        req,
		workerDone: workerDone,
		resolved:   make(chan struct{}),
	}
}

// ID identifies the underlying request in worker logs.
func (f *Future) ID() uuid.UUID {
	return f.req.ID
}

// Await blocks until the worker answers, ctx is done, or the worker stops
// without answering (domain.ErrReplyCancelled). Abandoning the wait does not
// remove the request from the queue. Once resolved, Await returns the same
// outcome on every call.
func (f *Future) Await(ctx context.Context) ([]domain.Choice, error) {
	select {
	case <-f.resolved:
	case res, ok := <-f.req.reply:
		// !ok: another Await took the reply and is about to resolve.
		if ok {
			f.resolve(res)
		}
	case <-f.workerDone:
		select {
		case res, ok := <-f.req.reply:
			if ok {
				f.resolve(res)
			}
		default:
			f.resolve(result{err: domain.NewReplyCancelledError("worker stopped before replying")})
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case <-f.resolved:
		return f.res.choices, f.res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *Future) resolve(res result) {
	f.once.Do(func() {
		f.res = res
		close(f.resolved)
	})
}
