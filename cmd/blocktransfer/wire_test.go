package main

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gabapcia/blocktransfer/internal/config"
	"github.com/gabapcia/blocktransfer/internal/pkg/logger"
	"github.com/gagliardetto/solana-go"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init("error")
}

func testConfig() config.Config {
	return config.Config{
		StreamEndpoint:      "wss://stream.example.com",
		StreamAuthToken:     "secret-token",
		StreamAuthHeader:    "x-token",
		RPCEndpoint:         "https://rpc.example.com",
		RPCTimeout:          time.Second,
		Commitment:          "confirmed",
		ConfirmTimeout:      time.Minute,
		ConfirmPollInterval: 500 * time.Millisecond,
		Redis: config.Redis{
			ReportKey:    "blocktransfer:transfers",
			ReportMaxLen: 100,
		},
	}
}

func testResolved() config.Resolved {
	return config.Resolved{
		Signer:    solana.NewWallet().PrivateKey,
		Recipient: solana.NewWallet().PublicKey(),
		Lamports:  1_000_000_000,
	}
}

func TestBuild(t *testing.T) {
	t.Run("without a report sink", func(t *testing.T) {
		svc, cleanup, err := build(t.Context(), testConfig(), testResolved())
		require.NoError(t, err)
		require.NotNil(t, svc)
		require.NotNil(t, cleanup)

		assert.Nil(t, svc.Done())
		assert.NotPanics(t, cleanup)
	})

	t.Run("connects the report sink", func(t *testing.T) {
		server := miniredis.RunT(t)

		cfg := testConfig()
		cfg.Redis.Addr = server.Addr()

		svc, cleanup, err := build(t.Context(), cfg, testResolved())
		require.NoError(t, err)
		require.NotNil(t, svc)

		assert.Positive(t, server.CommandCount())
		assert.NotPanics(t, cleanup)
	})

	t.Run("unreachable report sink", func(t *testing.T) {
		server := miniredis.RunT(t)
		addr := server.Addr()
		server.Close()

		cfg := testConfig()
		cfg.Redis.Addr = addr

		svc, cleanup, err := build(t.Context(), cfg, testResolved())
		assert.Nil(t, svc)
		assert.Nil(t, cleanup)
		assert.ErrorContains(t, err, "report sink")
	})

	t.Run("unknown commitment", func(t *testing.T) {
		cfg := testConfig()
		cfg.Commitment = "rooted"

		svc, _, err := build(t.Context(), cfg, testResolved())
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, config.ErrConfig)
	})
}
