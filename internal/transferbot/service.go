// Package transferbot runs the block-triggered transfer loop: every new block
// notification produces one transfer of a fixed amount to a fixed recipient.
package transferbot

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/blocktransfer/internal/chainstream"
	"github.com/gabapcia/blocktransfer/internal/pkg/logger"
	"github.com/gabapcia/blocktransfer/internal/transfer"
	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called on a running service.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrStreamEnded is reported by Err when the block stream closed on its own.
	// The subscription is not reestablished.
	ErrStreamEnded = errors.New("block stream ended")
)

// Service runs the transfer loop.
type Service interface {
	// Start opens the block subscription and starts listening in the
	// background. Subscription failures are returned as is.
	Start(ctx context.Context) error

	// Close stops listening and closes the subscription. A transfer in flight
	// is not interrupted: it runs to completion and is reported before the
	// loop stops, so callers wait on Done to drain it.
	Close()

	// Done is closed when the loop stops. It is nil before Start.
	Done() <-chan struct{}

	// Err returns ErrStreamEnded once Done is closed because the stream ended,
	// and nil otherwise.
	Err() error
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	done      chan struct{}

	errMu sync.Mutex
	err   error

	chainstream chainstream.Service
	transfers   transfer.Service
	reporter    Reporter
	metrics     *metrics

	recipient solana.PublicKey
	lamports  uint64
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	eventsCh, err := s.chainstream.Start(ctx)
	if err != nil {
		cancel()
		return err
	}

	logger.Info(ctx, "listening for new blocks",
		"transfer.sender", s.transfers.Sender().String(),
		"transfer.recipient", s.recipient.String(),
		"transfer.lamports", s.lamports,
	)

	done := make(chan struct{})
	s.setErr(nil)
	go func() {
		defer close(done)
		s.setErr(s.listen(ctx, eventsCh))
	}()

	s.done = done
	s.closeFunc = func() {
		cancel()
		s.chainstream.Close()
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

func (s *service) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()

	return s.err
}

func (s *service) setErr(err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()

	s.err = err
}

type config struct {
	reporter      Reporter
	meterProvider metric.MeterProvider
}

// Option configures the service.
type Option func(*config)

// WithReporter sends a TransferReport for every attempt to r.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}

// WithMeterProvider records loop metrics on mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// New creates the transfer loop. Every block notification received from
// stream triggers a transfer of lamports to recipient through transfers.
func New(stream chainstream.Service, transfers transfer.Service, recipient solana.PublicKey, lamports uint64, opts ...Option) *service {
	cfg := config{
		reporter:      noopReporter{},
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chainstream: stream,
		transfers:   transfers,
		reporter:    cfg.reporter,
		metrics:     newMetrics(cfg.meterProvider),
		recipient:   recipient,
		lamports:    lamports,
	}
}
