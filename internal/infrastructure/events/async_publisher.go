package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// ErrQueueFull is returned when the dispatch buffer cannot take another event.
var ErrQueueFull = errors.New("event queue full")

// ErrPublisherClosed is returned for events published after Close.
var ErrPublisherClosed = errors.New("event publisher closed")

// AsyncPublisher queues events and delivers them from a single worker, so a
// slow or unreachable broker never holds up the request that produced them.
// Each delivery runs under its own timeout, detached from the request.
type AsyncPublisher struct {
	next    contract.IEventPublisher
	logger  usecasecontract.IAppLogger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan entity.PostEvent
	done   chan struct{}
}

func NewAsyncPublisher(next contract.IEventPublisher, buffer int, timeout time.Duration, logger usecasecontract.IAppLogger) *AsyncPublisher {
	p := &AsyncPublisher{
		next:    next,
		logger:  logger,
		timeout: timeout,
		queue:   make(chan entity.PostEvent, buffer),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

var _ contract.IEventPublisher = (*AsyncPublisher)(nil)

// Publish enqueues the event without blocking.
func (p *AsyncPublisher) Publish(_ context.Context, event entity.PostEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *AsyncPublisher) run() {
	defer close(p.done)
	for event := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		err := p.next.Publish(ctx, event)
		cancel()
		if err != nil {
			metrics.EventsPublished.WithLabelValues(string(event.Type), "failed").Inc()
			p.logger.Warnf("failed to deliver %s for post %s: %v", event.Type, event.PostID, err)
			continue
		}
		metrics.EventsPublished.WithLabelValues(string(event.Type), "delivered").Inc()
	}
}

// Close stops accepting events, drains the queue and closes the wrapped
// publisher.
func (p *AsyncPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return p.next.Close()
}
