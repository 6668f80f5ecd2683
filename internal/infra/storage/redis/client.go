// Package redis implements the pipeline storage on Redis: the checkpoint,
// the receipt -> transaction links and the downstream block queue.
//
// All commands go through a single connection handle and are serialized by
// a mutex, so at most one command per client is in flight.
package redis

import (
	"context"
	"sync"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	mu    sync.Mutex    // serializes commands on conn
	conn  *redis.Client // underlying connection pool
	queue string        // name of the list receiving relevant blocks
}

// Close releases the connection.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at url (redis://[user:pass@]host:port/db)
// and verifies the connection. Blocks are pushed to the list named queue.
func NewClient(ctx context.Context, url, queue string) (*client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	conn := redis.NewClient(opts)
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:  conn,
		queue: queue,
	}, nil
}
