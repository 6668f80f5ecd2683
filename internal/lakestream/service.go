package lakestream

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/lakewatch/internal/pkg/logger"
	"github.com/gabapcia/lakewatch/internal/pkg/x/chflow"
)

type service struct {
	mu        sync.Mutex // protects isStarted
	isStarted bool       // ensures Run is called only once

	source     BlockSource
	checkpoint CheckpointStorage
	handler    BlockHandler

	startHeight          uint64
	resumeFromCheckpoint bool
}

var _ Service = (*service)(nil)

// resumeHeight returns the height the stream starts at: the block after the
// checkpoint when resuming is enabled and a checkpoint exists, the configured
// start height otherwise.
func (s *service) resumeHeight(ctx context.Context) (uint64, error) {
	if !s.resumeFromCheckpoint {
		return s.startHeight, nil
	}

	checkpoint, err := s.checkpoint.LoadLatestCheckpoint(ctx)
	if errors.Is(err, ErrNoCheckpointFound) {
		logger.Info(ctx, "no checkpoint found, using the configured start height",
			"stream.start_height", s.startHeight,
		)
		return s.startHeight, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load checkpoint: %w", err)
	}

	return checkpoint + 1, nil
}

// markStarted flips the started flag, failing when it was already set.
func (s *service) markStarted() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	s.isStarted = true
	return nil
}

// Run implements Service. A block is fully handled before the next one is
// received from the source.
func (s *service) Run(ctx context.Context) error {
	if err := s.markStarted(); err != nil {
		return err
	}

	start, err := s.resumeHeight(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := s.source.Subscribe(ctx, start)
	if err != nil {
		return fmt.Errorf("failed to open block stream at height %d: %w", start, err)
	}

	logger.Info(ctx, "block stream started", "stream.start_height", start)

	floor := start
	for {
		event, ok := chflow.Receive(ctx, events)
		if !ok {
			if ctx.Err() != nil {
				logger.Info(ctx, "block stream stopped", "stream.last_height", floor)
				return nil
			}

			return fmt.Errorf("%w at height %d", ErrStreamClosed, floor)
		}

		if event.Err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("block stream failed at height %d: %w", event.Height, event.Err)
		}

		height := event.Message.Height()
		if height < floor {
			return fmt.Errorf("%w: height %d after %d", ErrOutOfOrderBlock, height, floor)
		}

		if err := s.handler.HandleBlock(ctx, event.Message); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to handle block %d: %w", height, err)
		}

		floor = height
	}
}

type config struct {
	startHeight          uint64
	resumeFromCheckpoint bool
}

// Option configures the stream.
type Option func(*config)

// WithStartHeight sets the height the stream starts at when it does not
// resume from a checkpoint. Defaults to 0.
func WithStartHeight(height uint64) Option {
	return func(c *config) {
		c.startHeight = height
	}
}

// WithResumeFromCheckpoint makes the stream start right after the stored
// checkpoint, when there is one.
func WithResumeFromCheckpoint(enabled bool) Option {
	return func(c *config) {
		c.resumeFromCheckpoint = enabled
	}
}

// New creates a stream reading from source, resuming through checkpoint and
// delivering blocks to handler.
func New(source BlockSource, checkpoint CheckpointStorage, handler BlockHandler, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source:               source,
		checkpoint:           checkpoint,
		handler:              handler,
		startHeight:          cfg.startHeight,
		resumeFromCheckpoint: cfg.resumeFromCheckpoint,
	}
}
