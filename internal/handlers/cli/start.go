package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/blocktransfer/internal/config"
	"github.com/gabapcia/blocktransfer/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// startCommand returns the command that runs the transfer loop.
//
// Configuration is loaded and resolved before anything is wired, so a bad
// amount, address or key fails without opening a connection. The process runs
// until it receives SIGINT or SIGTERM, or until the block stream ends. On a
// signal, a transfer in flight is allowed to finish before returning.
func startCommand(build BuildFunc) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Subscribes to new blocks and performs one transfer per block notification.",
		Usage:       "Runs the transfer loop. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			resolved, err := config.Resolve(cfg)
			if err != nil {
				return err
			}

			svc, cleanup, err := build(ctx, cfg, resolved)
			if err != nil {
				return err
			}
			defer cleanup()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			select {
			case sig := <-quit:
				logger.Info(ctx, "shutting down", "signal", sig.String())
				svc.Close()
				<-svc.Done()
				return nil
			case <-svc.Done():
				return svc.Err()
			}
		},
	}
}
