package transfer

import (
	"errors"
	"fmt"
)

var (
	// ErrRPCQuery is returned when the freshness token cannot be fetched or is malformed.
	ErrRPCQuery = errors.New("rpc query failed")

	// ErrSubmission covers both broadcast failures and confirmation failures
	// (rejection or timeout).
	ErrSubmission = errors.New("transaction submission failed")

	// ErrInvalidTransfer is returned when a transfer cannot be constructed.
	ErrInvalidTransfer = errors.New("invalid transfer")
)

// Stage names a step of a transfer attempt.
type Stage string

const (
	StageFetchFreshnessToken Stage = "fetch-freshness-token"
	StageBuildTransfer       Stage = "build-transfer"
	StageSubmitAndConfirm    Stage = "submit-and-confirm"
)

// TransferError reports the stage at which a transfer attempt was aborted.
type TransferError struct {
	Stage Stage
	Err   error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer aborted at %s: %v", e.Stage, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// StageOf returns the stage carried by err, or "" when err is not a TransferError.
func StageOf(err error) Stage {
	var transferErr *TransferError
	if errors.As(err, &transferErr) {
		return transferErr.Stage
	}

	return ""
}
