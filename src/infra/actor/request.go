package actor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"choicefetch/src/core/domain"
)

type requestKind int

const (
	kindQuery requestKind = iota
	kindPing
)

func (k requestKind) String() string {
	if k == kindPing {
		return "ping"
	}
	return "query"
}

// result is the payload of a reply slot.
type result struct {
	choices []domain.Choice
	err     error
}

// Request is one unit of work for the worker. It is consumed exactly once and
// its reply slot is fulfilled exactly once.
type Request struct {
	ID       uuid.UUID
	Query    domain.Query
	Enqueued time.Time

	kind  requestKind
	ctx   context.Context
	reply chan result
	once  sync.Once
}

func newRequest(ctx context.Context, kind requestKind, query domain.Query) *Request {
	return &Request{
		ID:       uuid.New(),
		Query:    query,
		Enqueued: time.Now(),
		kind:     kind,
		ctx:      ctx,
		// Buffered so the worker never blocks on a caller that stopped waiting.
		reply: make(chan result, 1),
	}
}

// fulfill delivers the outcome and closes the slot. Later calls are ignored.
func (r *Request) fulfill(choices []domain.Choice, err error) {
	r.once.Do(func() {
		r.reply <- result{choices: choices, err: err}
		close(r.reply)
	})
}
