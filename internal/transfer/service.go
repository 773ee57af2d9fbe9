// Package transfer performs value transfers on the chain: it fetches a
// freshness token, builds and signs the transfer, then submits it and waits
// for the configured commitment.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/blocktransfer/internal/pkg/logger"
	"github.com/gabapcia/blocktransfer/internal/pkg/resilience/retry"
	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gabapcia/blocktransfer/internal/transfer"

var (
	// errNotConfirmed is returned by a status poll that has not yet reached the target commitment.
	errNotConfirmed = errors.New("transaction not confirmed yet")

	// errConfirmationTimeout is returned when the target commitment was not reached in time.
	errConfirmationTimeout = errors.New("confirmation timed out")

	// errTransactionFailed is returned when the network executed the transaction and it failed.
	errTransactionFailed = errors.New("transaction failed on chain")

	// errBlockhashUsed is returned when the node hands out a blockhash this client already signed with.
	errBlockhashUsed = errors.New("blockhash already used")
)

// Service moves funds from the bound sender account.
type Service interface {
	// Sender returns the address funds are moved from.
	Sender() solana.PublicKey

	// FetchFreshnessToken returns a recent blockhash. Failures wrap ErrRPCQuery.
	FetchFreshnessToken(ctx context.Context) (solana.Hash, error)

	// BuildTransfer creates a signed transfer of lamports to recipient valid
	// for blockhash. Failures wrap ErrInvalidTransfer.
	BuildTransfer(recipient solana.PublicKey, lamports uint64, blockhash solana.Hash) (*solana.Transaction, error)

	// SubmitAndConfirm broadcasts tx and waits until the configured commitment
	// is reached. Failures wrap ErrSubmission. When the broadcast succeeded the
	// signature is returned even if confirmation failed.
	SubmitAndConfirm(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)

	// PerformTransfer runs the three steps above in order. Any failure is
	// returned as a *TransferError naming the stage that failed.
	//
	// PerformTransfer is not idempotent: every call creates a new transfer.
	// A blockhash is never signed with twice, so a call that receives the
	// same blockhash as the previous one fails at the freshness token stage
	// instead of re-submitting an identical transaction.
	PerformTransfer(ctx context.Context, recipient solana.PublicKey, lamports uint64) (solana.Signature, error)
}

type client struct {
	ledger Ledger
	signer solana.PrivateKey
	tracer trace.Tracer

	commitment     Commitment
	confirmTimeout time.Duration
	pollInterval   time.Duration

	mu            sync.Mutex
	lastBlockhash solana.Hash
}

var _ Service = (*client)(nil)

func (c *client) Sender() solana.PublicKey {
	return c.signer.PublicKey()
}

func (c *client) FetchFreshnessToken(ctx context.Context) (solana.Hash, error) {
	blockhash, err := c.ledger.LatestBlockhash(ctx)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("%w: %w", ErrRPCQuery, err)
	}

	if blockhash.IsZero() {
		return solana.Hash{}, fmt.Errorf("%w: empty blockhash", ErrRPCQuery)
	}

	return blockhash, nil
}

// claimBlockhash records blockhash as used. It reports false when the
// previous transfer already used it.
func (c *client) claimBlockhash(blockhash solana.Hash) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastBlockhash == blockhash {
		return false
	}

	c.lastBlockhash = blockhash
	return true
}

func (c *client) BuildTransfer(recipient solana.PublicKey, lamports uint64, blockhash solana.Hash) (*solana.Transaction, error) {
	return BuildTransfer(c.signer, recipient, lamports, blockhash)
}

func (c *client) SubmitAndConfirm(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	signature, err := c.ledger.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: broadcast: %w", ErrSubmission, err)
	}

	logger.Debug(ctx, "transaction submitted", "transaction.id", signature.String())

	if err := c.awaitCommitment(ctx, signature); err != nil {
		return signature, fmt.Errorf("%w: %w", ErrSubmission, err)
	}

	return signature, nil
}

// awaitCommitment polls the signature status at a fixed interval until the
// target commitment is reached. The transaction is never re-sent.
func (c *client) awaitCommitment(ctx context.Context, signature solana.Signature) error {
	pollCtx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	attempts := uint(c.confirmTimeout/c.pollInterval) + 1
	poller := retry.New(
		retry.WithAttempts(attempts),
		retry.WithDelay(c.pollInterval),
		retry.WithMaxDelay(c.pollInterval),
		retry.WithFixedDelay(),
	)

	err := poller.Execute(pollCtx, func() error {
		status, err := c.ledger.SignatureStatus(pollCtx, signature)
		if err != nil {
			// transient, the next poll may succeed
			return err
		}

		if status.Err != nil {
			return retry.Unrecoverable(fmt.Errorf("%w: %w", errTransactionFailed, status.Err))
		}

		if !status.Found || !status.Commitment.Reaches(c.commitment) {
			return errNotConfirmed
		}

		return nil
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, errTransactionFailed) {
		return err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return fmt.Errorf("%w after %s waiting for %s: %w", errConfirmationTimeout, c.confirmTimeout, c.commitment, err)
}

func (c *client) PerformTransfer(ctx context.Context, recipient solana.PublicKey, lamports uint64) (solana.Signature, error) {
	ctx, span := c.tracer.Start(ctx, "transfer.perform", trace.WithAttributes(
		attribute.String("transfer.recipient", recipient.String()),
		attribute.Int64("transfer.lamports", int64(lamports)),
	))
	defer span.End()

	fail := func(stage Stage, err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(stage))
		return &TransferError{Stage: stage, Err: err}
	}

	blockhash, err := c.FetchFreshnessToken(ctx)
	if err != nil {
		return solana.Signature{}, fail(StageFetchFreshnessToken, err)
	}

	if !c.claimBlockhash(blockhash) {
		err := fmt.Errorf("%w: %w: %s", ErrRPCQuery, errBlockhashUsed, blockhash)
		return solana.Signature{}, fail(StageFetchFreshnessToken, err)
	}
	span.AddEvent(string(StageFetchFreshnessToken))

	tx, err := c.BuildTransfer(recipient, lamports, blockhash)
	if err != nil {
		return solana.Signature{}, fail(StageBuildTransfer, err)
	}
	span.AddEvent(string(StageBuildTransfer))

	signature, err := c.SubmitAndConfirm(ctx, tx)
	if !signature.IsZero() {
		span.SetAttributes(attribute.String("transaction.id", signature.String()))
	}
	if err != nil {
		return signature, fail(StageSubmitAndConfirm, err)
	}
	span.AddEvent(string(StageSubmitAndConfirm))

	return signature, nil
}

type config struct {
	commitment     Commitment
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

// Option configures the client.
type Option func(*config)

// WithCommitment sets the commitment SubmitAndConfirm waits for.
// Default: confirmed.
func WithCommitment(c Commitment) Option {
	return func(cfg *config) {
		cfg.commitment = c
	}
}

// WithConfirmTimeout bounds the wait for the target commitment.
// Default: 60 seconds.
func WithConfirmTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.confirmTimeout = d
	}
}

// WithPollInterval sets the interval between signature status reads.
// Default: 500 milliseconds.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.pollInterval = d
	}
}

// New creates a transfer client that signs with signer and talks to ledger.
func New(ledger Ledger, signer solana.PrivateKey, opts ...Option) *client {
	cfg := config{
		commitment:     CommitmentConfirmed,
		confirmTimeout: 60 * time.Second,
		pollInterval:   500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.confirmTimeout <= 0 {
		cfg.confirmTimeout = 60 * time.Second
	}

	if cfg.pollInterval <= 0 {
		cfg.pollInterval = 500 * time.Millisecond
	}

	return &client{
		ledger:         ledger,
		signer:         signer,
		tracer:         otel.Tracer(tracerName),
		commitment:     cfg.commitment,
		confirmTimeout: cfg.confirmTimeout,
		pollInterval:   cfg.pollInterval,
	}
}
