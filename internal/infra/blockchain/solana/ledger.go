// Package solana adapts a Solana node to the chainstream and transfer ports:
// a JSON-RPC ledger for blockhashes, submission and signature status, and a
// websocket block subscriber.
package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/blocktransfer/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blocktransfer/internal/transfer"
	solanago "github.com/gagliardetto/solana-go"
)

// ErrMalformedResponse is returned when a node result cannot be interpreted.
var ErrMalformedResponse = errors.New("malformed node response")

type (
	commitmentConfig struct {
		Commitment transfer.Commitment `json:"commitment"`
	}

	sendTransactionConfig struct {
		Encoding            string              `json:"encoding"`
		PreflightCommitment transfer.Commitment `json:"preflightCommitment"`
	}

	signatureStatusesConfig struct {
		SearchTransactionHistory bool `json:"searchTransactionHistory"`
	}

	// LatestBlockhashResponse is the result of getLatestBlockhash.
	LatestBlockhashResponse struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value struct {
			Blockhash            string `json:"blockhash"`
			LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
		} `json:"value"`
	}

	// SignatureStatusResponse is one entry of the getSignatureStatuses result.
	SignatureStatusResponse struct {
		Slot               uint64          `json:"slot"`
		Confirmations      *uint64         `json:"confirmations"`
		Err                json.RawMessage `json:"err"`
		ConfirmationStatus string          `json:"confirmationStatus"`
	}

	// SignatureStatusesResponse is the result of getSignatureStatuses.
	SignatureStatusesResponse struct {
		Value []*SignatureStatusResponse `json:"value"`
	}
)

// isNull reports whether raw is absent or the JSON null literal.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// toSignatureStatus maps a node status entry. Nodes that predate
// confirmationStatus report rooted transactions with null confirmations.
func (r *SignatureStatusResponse) toSignatureStatus() transfer.SignatureStatus {
	if r == nil {
		return transfer.SignatureStatus{}
	}

	status := transfer.SignatureStatus{
		Found:      true,
		Slot:       r.Slot,
		Commitment: transfer.Commitment(r.ConfirmationStatus),
	}

	if status.Commitment == "" {
		status.Commitment = transfer.CommitmentProcessed
		if r.Confirmations == nil {
			status.Commitment = transfer.CommitmentFinalized
		}
	}

	if !isNull(r.Err) {
		status.Err = fmt.Errorf("instruction error: %s", r.Err)
	}

	return status
}

type ledger struct {
	conn       jsonrpc.Client
	commitment transfer.Commitment
}

var _ transfer.Ledger = (*ledger)(nil)

func (l *ledger) LatestBlockhash(ctx context.Context) (solanago.Hash, error) {
	resp, err := jsonrpc.Call[LatestBlockhashResponse](ctx, l.conn, "getLatestBlockhash", commitmentConfig{
		Commitment: l.commitment,
	})
	if err != nil {
		return solanago.Hash{}, err
	}

	blockhash, err := solanago.HashFromBase58(resp.Value.Blockhash)
	if err != nil {
		return solanago.Hash{}, fmt.Errorf("%w: blockhash %q: %w", ErrMalformedResponse, resp.Value.Blockhash, err)
	}

	return blockhash, nil
}

func (l *ledger) SendTransaction(ctx context.Context, tx *solanago.Transaction) (solanago.Signature, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return solanago.Signature{}, fmt.Errorf("encode transaction: %w", err)
	}

	result, err := jsonrpc.Call[string](ctx, l.conn, "sendTransaction",
		base64.StdEncoding.EncodeToString(raw),
		sendTransactionConfig{
			Encoding:            "base64",
			PreflightCommitment: l.commitment,
		},
	)
	if err != nil {
		return solanago.Signature{}, err
	}

	signature, err := solanago.SignatureFromBase58(result)
	if err != nil {
		return solanago.Signature{}, fmt.Errorf("%w: signature %q: %w", ErrMalformedResponse, result, err)
	}

	return signature, nil
}

func (l *ledger) SignatureStatus(ctx context.Context, signature solanago.Signature) (transfer.SignatureStatus, error) {
	resp, err := jsonrpc.Call[SignatureStatusesResponse](ctx, l.conn, "getSignatureStatuses",
		[]string{signature.String()},
		signatureStatusesConfig{SearchTransactionHistory: false},
	)
	if err != nil {
		return transfer.SignatureStatus{}, err
	}

	if len(resp.Value) == 0 {
		return transfer.SignatureStatus{}, nil
	}

	return resp.Value[0].toSignatureStatus(), nil
}

// NewLedger creates a Ledger that talks to a node over conn. commitment is
// used for blockhash queries and transaction preflight.
func NewLedger(conn jsonrpc.Client, commitment transfer.Commitment) *ledger {
	return &ledger{
		conn:       conn,
		commitment: commitment,
	}
}
