package actor

import (
	"context"
	"sync"

	"choicefetch/src/core/domain"
)

// DefaultQueueCapacity is the number of requests that may wait for the worker
// before enqueueing blocks.
const DefaultQueueCapacity = 4

// RequestChannel is a bounded multi-producer, single-consumer queue of requests.
// Send blocks while the queue is full and fails once the channel is closed.
type RequestChannel struct {
	mu     sync.Mutex
	closed bool
	// closing is closed first by Close and releases every blocked sender.
	closing chan struct{}
	// senders counts Sends past the closed check; queue is closed only once it reaches zero.
	senders sync.WaitGroup
	queue   chan *Request
}

// NewRequestChannel returns a channel holding at most capacity queued requests.
func NewRequestChannel(capacity int) *RequestChannel {
	if capacity < 1 {
		capacity = DefaultQueueCapacity
	}
	return &RequestChannel{
		closing: make(chan struct{}),
		queue:   make(chan *Request, capacity),
	}
}

// Send enqueues req, waiting for room until ctx is done or the channel is
// closed. A Send still waiting when Close is called fails with domain.ErrShutdown.
func (c *RequestChannel) Send(ctx context.Context, req *Request) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.ErrShutdown
	}
	c.senders.Add(1)
	c.mu.Unlock()
	defer c.senders.Done()

	select {
	case c.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.closing:
		return domain.ErrShutdown
	}
}

// Receive returns the next request, or false once the channel is closed and empty.
func (c *RequestChannel) Receive() (*Request, bool) {
	req, ok := <-c.queue
	return req, ok
}

// Close stops intake and releases blocked senders. Requests already queued
// stay receivable until Receive reports false.
func (c *RequestChannel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.closing)
	c.mu.Unlock()

	c.senders.Wait()
	close(c.queue)
}

// Len is the number of queued requests.
func (c *RequestChannel) Len() int {
	return len(c.queue)
}

// Cap is the queue capacity.
func (c *RequestChannel) Cap() int {
	return cap(c.queue)
}
