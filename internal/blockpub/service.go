package blockpub

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/gabapcia/lakewatch/internal/near"
	"github.com/gabapcia/lakewatch/internal/pkg/logger"
	"github.com/gabapcia/lakewatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/lakewatch/internal/receiptcorr"
)

// CheckpointCadence is the height interval at which irrelevant blocks still
// advance the checkpoint, bounding the replay distance after a restart.
const CheckpointCadence = 100

type service struct {
	receipts   ReceiptStorage
	queue      BlockQueue
	checkpoint CheckpointStorage

	retry retry.Retry
}

var _ Service = (*service)(nil)

// call runs a single store operation, through the retrier when one is configured.
func (s *service) call(ctx context.Context, operation func() error) error {
	if s.retry == nil {
		return operation()
	}

	return s.retry.Execute(ctx, operation)
}

// Publish implements Service. Receipt links are written in ascending receipt
// id order and always before the push and checkpoint writes.
func (s *service) Publish(ctx context.Context, msg near.StreamerMessage, correlation receiptcorr.Correlation) (Result, error) {
	var (
		result Result
		height = msg.Height()
	)

	for _, receiptID := range slices.Sorted(maps.Keys(correlation.Receipts)) {
		txHash := correlation.Receipts[receiptID]

		err := s.call(ctx, func() error {
			return s.receipts.SaveReceiptTransaction(ctx, receiptID, txHash)
		})
		if err != nil {
			return result, fmt.Errorf("failed to save transaction of receipt %s: %w", receiptID, err)
		}

		logger.Info(ctx, "receipt linked to transaction",
			"receipt.id", receiptID,
			"transaction.hash", txHash,
		)
		result.ReceiptsSaved++
	}

	switch {
	case correlation.Relevant:
		payload, err := json.Marshal(msg)
		if err != nil {
			return result, fmt.Errorf("failed to encode block: %w", err)
		}

		if err := s.call(ctx, func() error { return s.queue.PushBlock(ctx, payload) }); err != nil {
			return result, fmt.Errorf("failed to push block: %w", err)
		}
		result.Pushed = true
	case height%CheckpointCadence != 0:
		return result, nil
	}

	if err := s.call(ctx, func() error { return s.checkpoint.SaveCheckpoint(ctx, height) }); err != nil {
		return result, fmt.Errorf("failed to save checkpoint: %w", err)
	}
	result.Checkpointed = true

	return result, nil
}

type config struct {
	retry retry.Retry
}

// Option configures the publisher.
type Option func(*config)

// WithRetry retries each individual store write with r. Writes are not
// retried by default.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New returns a Service writing links to receipts, blocks to queue and
// checkpoints to checkpoint.
func New(receipts ReceiptStorage, queue BlockQueue, checkpoint CheckpointStorage, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		receipts:   receipts,
		queue:      queue,
		checkpoint: checkpoint,
		retry:      cfg.retry,
	}
}
