package transferbot

import (
	"context"
	"time"
)

// TransferReport describes the outcome of one transfer attempt.
type TransferReport struct {
	AttemptID     string        // unique id of the attempt (UUIDv7)
	Slot          uint64        // slot of the notification that triggered the attempt
	Recipient     string        // base58 recipient address
	Lamports      uint64        // amount in base units
	TransactionID string        // signature, empty when nothing was broadcast
	Stage         string        // failed stage, empty on success
	Error         string        // failure message, empty on success
	AttemptedAt   time.Time     // when the attempt started (UTC)
	Duration      time.Duration // wall time of the attempt
}

// Succeeded reports whether the attempt reached the target commitment.
func (r TransferReport) Succeeded() bool {
	return r.Error == ""
}

// Reporter receives one report per transfer attempt.
//
// Implementations should return a non-nil error only if the report itself
// could not be delivered. Errors are logged and never stop the loop.
type Reporter interface {
	ReportTransfer(ctx context.Context, report TransferReport) error
}

type noopReporter struct{}

func (noopReporter) ReportTransfer(context.Context, TransferReport) error { return nil }
