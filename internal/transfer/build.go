package transfer

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// BuildTransfer creates a transaction with a single system transfer moving
// lamports from the signer's account to recipient. The signer pays the fee
// and is the only signer. No network I/O is performed.
func BuildTransfer(signer solana.PrivateKey, recipient solana.PublicKey, lamports uint64, blockhash solana.Hash) (*solana.Transaction, error) {
	if lamports == 0 {
		return nil, fmt.Errorf("%w: zero lamports", ErrInvalidTransfer)
	}

	if blockhash.IsZero() {
		return nil, fmt.Errorf("%w: empty blockhash", ErrInvalidTransfer)
	}

	sender := signer.PublicKey()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(lamports, sender, recipient).Build(),
		},
		blockhash,
		solana.TransactionPayer(sender),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransfer, err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(sender) {
			return &signer
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: sign: %w", ErrInvalidTransfer, err)
	}

	return tx, nil
}
