package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

type blockingPublisher struct {
	release chan struct{}

	mu        sync.Mutex
	delivered []entity.PostEvent
	closed    bool
	fail      bool
}

func (b *blockingPublisher) Publish(ctx context.Context, event entity.PostEvent) error {
	select {
	case <-b.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	if b.fail {
		return errors.New("broker down")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delivered = append(b.delivered, event)
	return nil
}

func (b *blockingPublisher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

type quietLogger struct{}

func (quietLogger) Debugf(string, ...interface{}) {}
func (quietLogger) Infof(string, ...interface{})  {}
func (quietLogger) Warnf(string, ...interface{})  {}
func (quietLogger) Errorf(string, ...interface{}) {}
func (quietLogger) Fatalf(string, ...interface{}) {}

func TestAsyncPublisher_DoesNotWaitForDelivery(t *testing.T) {
	next := &blockingPublisher{release: make(chan struct{})}
	p := NewAsyncPublisher(next, 8, time.Minute, quietLogger{})

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Publish(context.Background(), entity.PostEvent{Type: entity.EventPostLiked, PostID: "p1"}))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	close(next.release)
	require.NoError(t, p.Close())
	assert.Len(t, next.delivered, 3)
	assert.True(t, next.closed)
}

func TestAsyncPublisher_QueueFull(t *testing.T) {
	next := &blockingPublisher{release: make(chan struct{})}
	p := NewAsyncPublisher(next, 1, time.Minute, quietLogger{})

	// the worker holds one event, the buffer holds another
	var err error
	for i := 0; i < 3 && err == nil; i++ {
		err = p.Publish(context.Background(), entity.PostEvent{Type: entity.EventPostCreated})
		if i == 0 {
			time.Sleep(20 * time.Millisecond)
		}
	}
	assert.ErrorIs(t, err, ErrQueueFull)

	close(next.release)
	require.NoError(t, p.Close())
}

func TestAsyncPublisher_DeliveryTimeout(t *testing.T) {
	next := &blockingPublisher{release: make(chan struct{})}
	p := NewAsyncPublisher(next, 4, 10*time.Millisecond, quietLogger{})

	require.NoError(t, p.Publish(context.Background(), entity.PostEvent{Type: entity.EventPostDeleted}))
	// never released: the delivery times out and Close still returns
	require.NoError(t, p.Close())
	assert.Empty(t, next.delivered)
}

func TestAsyncPublisher_PublishAfterClose(t *testing.T) {
	p := NewAsyncPublisher(NoopPublisher{}, 1, time.Second, quietLogger{})
	require.NoError(t, p.Close())

	assert.ErrorIs(t, p.Publish(context.Background(), entity.PostEvent{}), ErrPublisherClosed)
	assert.NoError(t, p.Close())
}
