// Package neardata implements lakestream.BlockSource over HTTP.
//
// Streamer messages are read from a NEAR archival data endpoint
// (GET {endpoint}/v0/block/{height}), which answers with the full message or
// with null for a height that produced no block. The final head of the chain
// is learned from a NEAR JSON-RPC node so the source knows when it has caught
// up and must poll.
package neardata

import (
	"context"
	"time"

	"github.com/gabapcia/lakewatch/internal/lakestream"
	"github.com/gabapcia/lakewatch/internal/pkg/logger"
	"github.com/gabapcia/lakewatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/lakewatch/internal/pkg/x/chflow"

	"github.com/hashicorp/go-retryablehttp"
)

// defaultPollInterval is the wait between head refreshes once the stream
// reached the final block. It matches the block time of NEAR.
const defaultPollInterval = time.Second

// client streams blocks from an archival data endpoint.
type client struct {
	endpoint     string                // Base URL of the archival data endpoint
	httpClient   *retryablehttp.Client // HTTP client used for block downloads
	rpc          jsonrpc.Client        // JSON-RPC client used to read the chain head
	pollInterval time.Duration         // Wait between head refreshes when caught up
}

// Ensure client implements the lakestream.BlockSource interface at compile time.
var _ lakestream.BlockSource = (*client)(nil)

// Subscribe implements lakestream.BlockSource.
//
// The chain head is read once before returning, so an unreachable RPC node
// fails the subscription. Blocks are sent on an unbuffered channel: the next
// block is downloaded while the current one is handled, and no further.
func (c *client) Subscribe(ctx context.Context, fromHeight uint64) (<-chan lakestream.BlockEvent, error) {
	head, err := c.finalHeight(ctx)
	if err != nil {
		return nil, err
	}

	eventsCh := make(chan lakestream.BlockEvent)
	go func() {
		defer close(eventsCh)
		c.stream(ctx, fromHeight, head, eventsCh)
	}()

	return eventsCh, nil
}

// stream emits the blocks from height onwards until ctx is done or a request
// fails. A failure is emitted as a terminal event.
func (c *client) stream(ctx context.Context, height, head uint64, eventsCh chan<- lakestream.BlockEvent) {
	for {
		if height > head {
			latest, err := c.finalHeight(ctx)
			if err != nil {
				chflow.Send(ctx, eventsCh, lakestream.BlockEvent{Height: height, Err: err})
				return
			}

			head = latest
			if height > head {
				if !chflow.Sleep(ctx, c.pollInterval) {
					return
				}
				continue
			}
		}

		msg, found, err := c.fetchBlock(ctx, height)
		if err != nil {
			chflow.Send(ctx, eventsCh, lakestream.BlockEvent{Height: height, Err: err})
			return
		}

		if !found {
			logger.Debug(ctx, "no block at height", "block.height", height)
		} else if !chflow.Send(ctx, eventsCh, lakestream.BlockEvent{Height: height, Message: msg}) {
			return
		}

		height++
	}
}

type config struct {
	pollInterval time.Duration
}

// Option configures the client.
type Option func(*config)

// WithPollInterval sets the wait between head refreshes once the stream has
// caught up with the chain.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// NewClient creates a block source downloading blocks from endpoint through
// httpClient and reading the chain head through rpc.
func NewClient(endpoint string, httpClient *retryablehttp.Client, rpc jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		endpoint:     endpoint,
		httpClient:   httpClient,
		rpc:          rpc,
		pollInterval: cfg.pollInterval,
	}
}
