package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/lakewatch/internal/lakestream"

	"github.com/urfave/cli/v3"
)

// startCommand returns a CLI command that runs the block stream.
//
// Usage example:
//
//	lakewatch start
//
// The stream runs until it fails or the process receives SIGINT or SIGTERM.
func startCommand(stream lakestream.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Streams blocks from the resume height, links receipts and publishes relevant blocks.",
		Usage:       "Runs the block stream. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return stream.Run(ctx)
		},
	}
}
