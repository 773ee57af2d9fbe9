// Package chainstream exposes the chain's new-block feed as an ordered stream
// of BlockEvent values. It owns the subscription lifecycle; the transport is
// provided by a Subscriber implementation.
package chainstream

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/blocktransfer/internal/pkg/logger"
	"github.com/gabapcia/blocktransfer/internal/pkg/x/chflow"
)

// ErrServiceAlreadyStarted is returned if Start is called on a running service.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service manages a single block subscription.
type Service interface {
	// Start subscribes to new blocks and returns the event stream. Subscription
	// failures are wrapped in ErrConnection. The stream is closed when the
	// subscription ends, ctx is canceled or Close is called.
	Start(ctx context.Context) (<-chan BlockEvent, error)

	// Close cancels the subscription. It is safe to call on a stopped service.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	name       string
	subscriber Subscriber
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan BlockEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(logger.Derive(ctx, "stream.name", s.name))

	eventsCh, err := s.subscriber.Subscribe(ctx)
	if err != nil {
		cancel()
		if errors.Is(err, ErrConnection) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	logger.Info(ctx, "block subscription established")

	outCh := make(chan BlockEvent)
	go func() {
		defer close(outCh)

		chflow.Forward(ctx, eventsCh, outCh)
		if ctx.Err() == nil {
			logger.Warn(ctx, "block subscription ended")
		}
	}()

	s.closeFunc = closeFunc(cancel)
	s.isStarted = true
	return outCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

type config struct {
	name string
}

// Option configures the service.
type Option func(*config)

// WithName sets the label attached to every log line of the subscription.
// Default: "blocks".
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// New creates a Service backed by subscriber.
func New(subscriber Subscriber, opts ...Option) *service {
	cfg := config{name: "blocks"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		name:       cfg.name,
		subscriber: subscriber,
	}
}
