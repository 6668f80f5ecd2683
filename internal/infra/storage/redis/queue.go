package redis

import (
	"context"

	"github.com/gabapcia/lakewatch/internal/blockpub"
)

// PushBlock prepends payload to the queue list. Consumers pop from the
// other end to read blocks in publication order.
func (c *client) PushBlock(ctx context.Context, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.LPush(ctx, c.queue, payload).Err()
}

// Compile-time assertion to ensure client implements the blockpub.BlockQueue interface.
var _ blockpub.BlockQueue = (*client)(nil)
