package neardata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabapcia/lakewatch/internal/near"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus is returned when the archival endpoint answers a block
// request with a status other than 200.
var ErrUnexpectedStatus = errors.New("unexpected http status")

// nullBody is the answer of the archival endpoint for heights without a block.
var nullBody = []byte("null")

// headResponse is the subset of the JSON-RPC "block" result read to learn the head.
type headResponse struct {
	Header struct {
		Height uint64 `json:"height"`
	} `json:"header"`
}

// blockURL returns the archival URL of the block at height.
func (c *client) blockURL(height uint64) string {
	return fmt.Sprintf("%s/v0/block/%d", strings.TrimRight(c.endpoint, "/"), height)
}

// fetchBlock downloads the streamer message at height. found is false when
// the height produced no block.
func (c *client) fetchBlock(ctx context.Context, height uint64) (msg near.StreamerMessage, found bool, err error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.blockURL(height), nil)
	if err != nil {
		return near.StreamerMessage{}, false, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return near.StreamerMessage{}, false, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return near.StreamerMessage{}, false, fmt.Errorf("%w: %s fetching block %d", ErrUnexpectedStatus, res.Status, height)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return near.StreamerMessage{}, false, err
	}

	if bytes.Equal(bytes.TrimSpace(body), nullBody) {
		return near.StreamerMessage{}, false, nil
	}

	if err := json.Unmarshal(body, &msg); err != nil {
		return near.StreamerMessage{}, false, fmt.Errorf("failed to decode block %d: %w", height, err)
	}

	return msg, true, nil
}

// finalHeight returns the height of the latest final block.
func (c *client) finalHeight(ctx context.Context) (uint64, error) {
	data, err := c.rpc.Fetch(ctx, "block", map[string]string{"finality": "final"})
	if err != nil {
		return 0, fmt.Errorf("failed to read final block: %w", err)
	}

	var head headResponse
	if err := json.Unmarshal(data, &head); err != nil {
		return 0, fmt.Errorf("failed to decode final block: %w", err)
	}

	return head.Header.Height, nil
}
