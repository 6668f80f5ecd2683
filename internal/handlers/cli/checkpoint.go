package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/lakewatch/internal/lakestream"

	"github.com/urfave/cli/v3"
)

// checkpointCommand returns the CLI command group that inspects and moves the
// stream checkpoint.
//
// Usage example:
//
//	lakewatch checkpoint show
//	lakewatch checkpoint set --height 120000000
func checkpointCommand(store Store) *cli.Command {
	return &cli.Command{
		Name:        "checkpoint",
		Description: "Inspect or move the height the stream resumes from.",
		Usage:       "Manages the stream checkpoint.",
		Commands: []*cli.Command{
			{
				Name:        "show",
				Description: "Print the last accounted-for block height.",
				Usage:       "Prints the stored checkpoint.",
				Action: func(ctx context.Context, c *cli.Command) error {
					height, err := store.LoadLatestCheckpoint(ctx)
					if errors.Is(err, lakestream.ErrNoCheckpointFound) {
						_, err = fmt.Fprintln(c.Root().Writer, "no checkpoint saved")
						return err
					}
					if err != nil {
						return err
					}

					_, err = fmt.Fprintln(c.Root().Writer, height)
					return err
				},
			},
			{
				Name:        "set",
				Description: "Overwrite the checkpoint. The next start resumes at height + 1.",
				Usage:       "Stores a new checkpoint. Must provide the height.",
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:     "height",
						Usage:    "Block height to store as the checkpoint",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return store.SaveCheckpoint(ctx, c.Uint64("height"))
				},
			},
		},
	}
}
