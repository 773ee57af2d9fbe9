package config

import (
	"crypto/ed25519"
	"fmt"
	"math/big"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// lamportsDecimals is the number of decimal places of one SOL in lamports.
const lamportsDecimals = 9

// Resolved holds the values derived from a Config that the transfer loop needs.
type Resolved struct {
	Signer    solana.PrivateKey
	Recipient solana.PublicKey
	Lamports  uint64
}

// Resolve parses the amount, the recipient and the signing key, in that
// order, and returns the first failure.
func Resolve(cfg Config) (Resolved, error) {
	lamports, err := ParseAmount(cfg.TransferAmount)
	if err != nil {
		return Resolved{}, err
	}

	recipient, err := ParseRecipient(cfg.RecipientAddress)
	if err != nil {
		return Resolved{}, err
	}

	signer, err := LoadSigner(cfg.SigningKeyPath)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{
		Signer:    signer,
		Recipient: recipient,
		Lamports:  lamports,
	}, nil
}

// ParseAmount converts a decimal amount in SOL into lamports. Digits past the
// ninth decimal place are truncated. The result must be positive and fit in
// 64 bits.
func ParseAmount(text string) (uint64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: transfer amount %q: %w", ErrConfig, text, err)
	}

	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: transfer amount %q must be greater than zero", ErrConfig, text)
	}

	lamports := amount.Shift(lamportsDecimals).Floor()
	if !lamports.IsPositive() {
		return 0, fmt.Errorf("%w: transfer amount %q is below one lamport", ErrConfig, text)
	}

	n := lamports.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: transfer amount %q exceeds %s lamports", ErrConfig, text, new(big.Int).SetUint64(^uint64(0)))
	}

	return n.Uint64(), nil
}

// ParseRecipient decodes a base58 account address.
func ParseRecipient(text string) (solana.PublicKey, error) {
	recipient, err := solana.PublicKeyFromBase58(strings.TrimSpace(text))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w %q: %w", ErrAddressParse, text, err)
	}

	return recipient, nil
}

// LoadSigner reads a solana-keygen JSON keypair file.
func LoadSigner(path string) (solana.PrivateKey, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: signing key: %w", ErrConfig, err)
	}

	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: signing key %s has %d bytes, want %d", ErrConfig, path, len(key), ed25519.PrivateKeySize)
	}

	return key, nil
}
