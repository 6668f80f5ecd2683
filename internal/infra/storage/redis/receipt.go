package redis

import (
	"context"
	"errors"

	"github.com/gabapcia/lakewatch/internal/blockpub"
	"github.com/gabapcia/lakewatch/internal/receiptcorr"

	"github.com/redis/go-redis/v9"
)

// SaveReceiptTransaction stores txHash under the receipt id itself, with no
// expiration. An existing link is overwritten.
func (c *client) SaveReceiptTransaction(ctx context.Context, receiptID, txHash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.Set(ctx, receiptID, txHash, 0).Err()
}

// LookupTransaction returns the transaction linked to receiptID, or
// receiptcorr.ErrTransactionNotFound when there is none.
func (c *client) LookupTransaction(ctx context.Context, receiptID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	txHash, err := c.conn.Get(ctx, receiptID).Result()
	if errors.Is(err, redis.Nil) {
		return "", receiptcorr.ErrTransactionNotFound
	}

	return txHash, err
}

// Compile-time assertions to ensure client implements the receipt interfaces.
var (
	_ receiptcorr.TransactionLookup = (*client)(nil)
	_ blockpub.ReceiptStorage       = (*client)(nil)
)
