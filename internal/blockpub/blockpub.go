// Package blockpub persists the outcome of correlating a block: it records
// the receipt links, forwards relevant blocks downstream and advances the
// checkpoint.
package blockpub

import (
	"context"

	"github.com/gabapcia/lakewatch/internal/near"
	"github.com/gabapcia/lakewatch/internal/receiptcorr"
)

// ReceiptStorage records receipt -> transaction links.
type ReceiptStorage interface {
	// SaveReceiptTransaction links receiptID to txHash, replacing any
	// previous link of receiptID.
	SaveReceiptTransaction(ctx context.Context, receiptID, txHash string) error
}

// BlockQueue receives the serialized relevant blocks.
type BlockQueue interface {
	// PushBlock appends one serialized block to the downstream queue.
	PushBlock(ctx context.Context, payload []byte) error
}

// CheckpointStorage persists the height of the last accounted-for block.
type CheckpointStorage interface {
	// SaveCheckpoint overwrites the stored checkpoint with height.
	SaveCheckpoint(ctx context.Context, height uint64) error
}

// Result describes the writes Publish performed for a block.
type Result struct {
	ReceiptsSaved int  // number of receipt links written
	Pushed        bool // the block was pushed to the queue
	Checkpointed  bool // the checkpoint was moved to the block height
}

// Service publishes correlated blocks.
type Service interface {
	// Publish writes every link of correlation, then, for a relevant block,
	// pushes msg to the queue and checkpoints its height. Irrelevant blocks
	// only checkpoint on heights that are a multiple of the checkpoint
	// cadence. The first failing write aborts the call.
	Publish(ctx context.Context, msg near.StreamerMessage, correlation receiptcorr.Correlation) (Result, error)
}
