package cli

import (
	"context"
	"os"

	"github.com/gabapcia/blocktransfer/internal/config"
	"github.com/gabapcia/blocktransfer/internal/pkg/logger"
	"github.com/gabapcia/blocktransfer/internal/pkg/telemetry"
	"github.com/gabapcia/blocktransfer/internal/transferbot"

	"github.com/urfave/cli/v3"
)

// BuildFunc wires the transfer loop from a loaded and resolved configuration.
// The returned cleanup releases whatever the wiring opened; it must be safe to
// call even when nothing was opened.
type BuildFunc func(ctx context.Context, cfg config.Config, resolved config.Resolved) (transferbot.Service, func(), error)

// newApp creates the root command.
//
// Global flags configure the process (config file, logging, telemetry); the
// Before hook initializes telemetry and the logger, the After hook flushes them.
func newApp(build BuildFunc) *cli.Command {
	shutdownTelemetry := telemetry.ShutdownFunc(func(context.Context) error { return nil })

	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blocktransfer",
		Description:           "Sends a fixed transfer to a fixed recipient for every new block on the chain.",
		Usage:                 "blocktransfer [global flags] command",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "dotenv `FILE` to read configuration from (environment variables take precedence)",
				Sources: cli.EnvVars(config.EnvPrefix + "_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(config.EnvPrefix + "_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "telemetry",
				Usage:   "export traces, metrics and logs over OTLP/gRPC",
				Sources: cli.EnvVars(config.EnvPrefix + "_TELEMETRY"),
			},
			&cli.StringFlag{
				Name:    "service-name",
				Usage:   "service name reported to telemetry",
				Value:   "blocktransfer",
				Sources: cli.EnvVars(config.EnvPrefix + "_SERVICE_NAME"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("telemetry") {
				shutdown, err := telemetry.Init(ctx, cmd.String("service-name"))
				if err != nil {
					return ctx, err
				}
				shutdownTelemetry = shutdown
			}

			return ctx, logger.Init(cmd.String("log-level"))
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			_ = logger.Sync()
			return shutdownTelemetry(context.WithoutCancel(ctx))
		},
		Commands: []*cli.Command{
			startCommand(build),
			checkCommand(),
		},
	}
}

// Run parses os.Args and executes the blocktransfer command line.
//
//   - `start`: runs the transfer loop until interrupted or the block stream ends.
//   - `check`: validates the configuration without opening any connection.
func Run(ctx context.Context, build BuildFunc) error {
	return newApp(build).Run(ctx, os.Args)
}
