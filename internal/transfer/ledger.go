package transfer

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Commitment is the network-defined assurance level of a block or transaction.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

// rank orders commitments from weakest to strongest. Unknown values rank 0.
func (c Commitment) rank() int {
	switch c {
	case CommitmentProcessed:
		return 1
	case CommitmentConfirmed:
		return 2
	case CommitmentFinalized:
		return 3
	default:
		return 0
	}
}

// Reaches reports whether c is at least as strong as target.
func (c Commitment) Reaches(target Commitment) bool {
	return c.rank() > 0 && c.rank() >= target.rank()
}

// ParseCommitment validates s as a Commitment.
func ParseCommitment(s string) (Commitment, error) {
	c := Commitment(s)
	if c.rank() == 0 {
		return "", fmt.Errorf("unknown commitment %q", s)
	}

	return c, nil
}

// SignatureStatus is the network's view of a submitted transaction.
type SignatureStatus struct {
	Found      bool       // false while the network does not know the signature yet
	Slot       uint64     // slot the transaction landed in
	Commitment Commitment // highest commitment reached so far
	Err        error      // non-nil when the transaction executed and failed
}

// Ledger is the request/response endpoint that executes transactions.
type Ledger interface {
	// LatestBlockhash returns the most recent blockhash at the ledger's commitment.
	LatestBlockhash(ctx context.Context) (solana.Hash, error)

	// SendTransaction broadcasts a signed transaction and returns its signature.
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)

	// SignatureStatus returns the current status of a transaction signature.
	SignatureStatus(ctx context.Context, signature solana.Signature) (SignatureStatus, error)
}
