package cli

import (
	"context"
	"os"

	"github.com/gabapcia/lakewatch/internal/blockpub"
	"github.com/gabapcia/lakewatch/internal/lakestream"
	"github.com/gabapcia/lakewatch/internal/receiptcorr"

	"github.com/urfave/cli/v3"
)

// Store is the storage surface used by the maintenance commands.
type Store interface {
	lakestream.CheckpointStorage
	blockpub.CheckpointStorage
	receiptcorr.TransactionLookup
}

// Run initializes and executes the lakewatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Streams blocks and publishes the relevant ones.
//   - `checkpoint show|set`: Inspects or moves the resume checkpoint.
//   - `receipt lookup`: Prints the transaction linked to a receipt.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - stream: The lakestream service run by the start command.
//   - store: The storage used by the maintenance commands.
func Run(ctx context.Context, stream lakestream.Service, store Store) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "lakewatch",
		Description:           "Streams NEAR blocks, links receipts to their transactions and publishes blocks touching the watched accounts.",
		Usage:                 "lakewatch [command] [flags]",
		Commands: []*cli.Command{
			startCommand(stream),
			checkpointCommand(store),
			receiptCommand(store),
		},
	}

	return app.Run(ctx, os.Args)
}
