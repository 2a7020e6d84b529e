package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choicefetch/src/core/domain"
)

func TestRequestChannelBlocksWhenFull(t *testing.T) {
	ch := NewRequestChannel(4)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, ch.Send(ctx, newRequest(ctx, kindQuery, "SELECT 1")))
	}
	assert.Equal(t, 4, ch.Len())

	timeout, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := ch.Send(timeout, newRequest(ctx, kindQuery, "SELECT 5"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	fifth := newRequest(ctx, kindQuery, "SELECT 5")
	sent := make(chan error, 1)
	go func() { sent <- ch.Send(ctx, fifth) }()

	select {
	case <-sent:
		t.Fatal("send on a full queue returned before a slot was drained")
	case <-time.After(50 * time.Millisecond):
	}

	first, ok := ch.Receive()
	require.True(t, ok)
	assert.Equal(t, domain.Query("SELECT 1"), first.Query)

	select {
	case err := <-sent:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("blocked send was not released after a receive")
	}
	assert.Equal(t, 4, ch.Len())
}

func TestRequestChannelPreservesOrder(t *testing.T) {
	ch := NewRequestChannel(4)
	ctx := context.Background()

	for _, q := range []domain.Query{"A", "B", "C"} {
		require.NoError(t, ch.Send(ctx, newRequest(ctx, kindQuery, q)))
	}
	ch.Close()

	var got []domain.Query
	for {
		req, ok := ch.Receive()
		if !ok {
			break
		}
		got = append(got, req.Query)
	}
	assert.Equal(t, []domain.Query{"A", "B", "C"}, got)
}

func TestRequestChannelRejectsAfterClose(t *testing.T) {
	ch := NewRequestChannel(1)
	ch.Close()
	ch.Close()

	err := ch.Send(context.Background(), newRequest(context.Background(), kindQuery, "SELECT 1"))
	assert.ErrorIs(t, err, domain.ErrShutdown)
}

func TestRequestChannelCloseReleasesBlockedSenders(t *testing.T) {
	ch := NewRequestChannel(1)
	ctx := context.Background()
	require.NoError(t, ch.Send(ctx, newRequest(ctx, kindQuery, "SELECT 1")))

	blocked := make(chan error, 1)
	go func() { blocked <- ch.Send(ctx, newRequest(ctx, kindQuery, "SELECT 2")) }()

	select {
	case <-blocked:
		t.Fatal("send on a full queue returned before Close")
	case <-time.After(20 * time.Millisecond):
	}

	ch.Close()

	select {
	case err := <-blocked:
		assert.ErrorIs(t, err, domain.ErrShutdown)
	case <-time.After(time.Second):
		t.Fatal("blocked send was not released by Close")
	}

	req, ok := ch.Receive()
	require.True(t, ok)
	assert.Equal(t, domain.Query("SELECT 1"), req.Query)
	_, ok = ch.Receive()
	assert.False(t, ok)
}

func TestNewRequestChannelDefaultsCapacity(t *testing.T) {
	assert.Equal(t, DefaultQueueCapacity, NewRequestChannel(0).Cap())
}

func TestRequestFulfilledOnce(t *testing.T) {
	req := newRequest(context.Background(), kindQuery, "SELECT 1")
	req.fulfill([]domain.Choice{{ID: "A1"}}, nil)
	req.fulfill(nil, domain.ErrShutdown)

	res := <-req.reply
	assert.NoError(t, res.err)
	assert.Equal(t, []domain.Choice{{ID: "A1"}}, res.choices)

	_, open := <-req.reply
	assert.False(t, open)
}
