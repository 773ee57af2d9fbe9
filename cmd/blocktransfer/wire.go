package main

import (
	"context"
	"fmt"

	"github.com/gabapcia/blocktransfer/internal/chainstream"
	"github.com/gabapcia/blocktransfer/internal/config"
	"github.com/gabapcia/blocktransfer/internal/infra/blockchain/solana"
	"github.com/gabapcia/blocktransfer/internal/infra/storage/redis"
	"github.com/gabapcia/blocktransfer/internal/pkg/transport/http"
	"github.com/gabapcia/blocktransfer/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blocktransfer/internal/transfer"
	"github.com/gabapcia/blocktransfer/internal/transferbot"
)

// build wires the Solana adapters, the optional report sink and the transfer loop.
func build(ctx context.Context, cfg config.Config, resolved config.Resolved) (transferbot.Service, func(), error) {
	commitment, err := transfer.ParseCommitment(cfg.Commitment)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", config.ErrConfig, err)
	}

	httpClient := http.NewClient(
		http.WithTimeout(cfg.RPCTimeout),
		http.WithRetryLogging(),
	)
	ledger := solana.NewLedger(jsonrpc.NewClient(httpClient.StandardClient(), cfg.RPCEndpoint), commitment)

	transfers := transfer.New(ledger, resolved.Signer,
		transfer.WithCommitment(commitment),
		transfer.WithConfirmTimeout(cfg.ConfirmTimeout),
		transfer.WithPollInterval(cfg.ConfirmPollInterval),
	)

	subscriber := solana.NewSubscriber(cfg.StreamEndpoint, cfg.StreamAuthHeader, cfg.StreamAuthToken, commitment,
		solana.WithAckTimeout(cfg.RPCTimeout),
	)

	cleanup := func() {}
	var opts []transferbot.Option

	if cfg.Redis.Enabled() {
		reports, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithReportStream(cfg.Redis.ReportKey, cfg.Redis.ReportMaxLen),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to report sink: %w", err)
		}

		opts = append(opts, transferbot.WithReporter(reports))
		cleanup = func() { _ = reports.Close() }
	}

	svc := transferbot.New(chainstream.New(subscriber), transfers, resolved.Recipient, resolved.Lamports, opts...)
	return svc, cleanup, nil
}
