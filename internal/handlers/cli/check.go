package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/blocktransfer/internal/config"

	"github.com/urfave/cli/v3"
)

// checkCommand returns the command that validates the configuration and
// prints what start would do. It opens no connection and never prints secrets.
func checkCommand() *cli.Command {
	return &cli.Command{
		Name:        "check",
		Description: "Loads and resolves the configuration without connecting to the network.",
		Usage:       "Validates the configuration and prints the transfer that start would perform.",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			resolved, err := config.Resolve(cfg)
			if err != nil {
				return err
			}

			reportSink := "disabled"
			if cfg.Redis.Enabled() {
				reportSink = fmt.Sprintf("redis %s stream %s", cfg.Redis.Addr, cfg.Redis.ReportKey)
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "sender:      %s\n", resolved.Signer.PublicKey())
			fmt.Fprintf(w, "recipient:   %s\n", resolved.Recipient)
			fmt.Fprintf(w, "lamports:    %d\n", resolved.Lamports)
			fmt.Fprintf(w, "stream:      %s\n", cfg.StreamEndpoint)
			fmt.Fprintf(w, "rpc:         %s\n", cfg.RPCEndpoint)
			fmt.Fprintf(w, "commitment:  %s\n", cfg.Commitment)
			fmt.Fprintf(w, "reports:     %s\n", reportSink)
			return nil
		},
	}
}
