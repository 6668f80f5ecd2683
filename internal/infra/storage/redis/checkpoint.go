package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/lakewatch/internal/blockpub"
	"github.com/gabapcia/lakewatch/internal/lakestream"

	"github.com/redis/go-redis/v9"
)

// checkpointKey is the key holding the last accounted-for block height,
// stored as a JSON number.
const checkpointKey = "block_height"

// SaveCheckpoint persists height as the latest checkpoint, with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, height uint64) error {
	value, err := json.Marshal(height)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.Set(ctx, checkpointKey, value, 0).Err()
}

// LoadLatestCheckpoint returns the saved checkpoint, or
// lakestream.ErrNoCheckpointFound if none was saved yet.
func (c *client) LoadLatestCheckpoint(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	val, err := c.conn.Get(ctx, checkpointKey).Bytes()
	c.mu.Unlock()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = lakestream.ErrNoCheckpointFound
		}

		return 0, err
	}

	var height uint64
	if err := json.Unmarshal(val, &height); err != nil {
		return 0, fmt.Errorf("invalid checkpoint value %q: %w", val, err)
	}

	return height, nil
}

// Compile-time assertions to ensure client implements both checkpoint interfaces.
var (
	_ lakestream.CheckpointStorage = (*client)(nil)
	_ blockpub.CheckpointStorage   = (*client)(nil)
)
