package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/lakewatch/internal/receiptcorr"

	"github.com/urfave/cli/v3"
)

// receiptCommand returns the CLI command group that inspects receipt links.
//
// Usage example:
//
//	lakewatch receipt lookup --id 9rXhyCKXxEEjkNf1q1ndGZpVzQkKhPxw4CvUbA2CV6Kn
func receiptCommand(store Store) *cli.Command {
	return &cli.Command{
		Name:        "receipt",
		Description: "Inspect the links between receipts and their transactions.",
		Usage:       "Reads receipt links.",
		Commands: []*cli.Command{
			{
				Name:        "lookup",
				Description: "Print the hash of the transaction linked to a receipt.",
				Usage:       "Looks up a receipt link. Must provide the receipt id.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Receipt id to look up",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					receiptID := c.String("id")

					txHash, err := store.LookupTransaction(ctx, receiptID)
					if errors.Is(err, receiptcorr.ErrTransactionNotFound) {
						return fmt.Errorf("receipt %s: %w", receiptID, err)
					}
					if err != nil {
						return err
					}

					_, err = fmt.Fprintln(c.Root().Writer, txHash)
					return err
				},
			},
		},
	}
}
