package receiptcorr

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gabapcia/lakewatch/internal/near"

	"github.com/stretchr/testify/require"
)

// loadFixture decodes the shared streamer message fixture of the near package.
func loadFixture(t *testing.T) near.StreamerMessage {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "near", "testdata", "block.json"))
	require.NoError(t, err)

	var msg near.StreamerMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}
