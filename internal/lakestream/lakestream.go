// Package lakestream drives the archival block stream. It decides where the
// stream resumes, subscribes to the block source and hands every block to a
// BlockHandler, one block at a time and in stream order.
package lakestream

import (
	"context"
	"errors"

	"github.com/gabapcia/lakewatch/internal/near"
)

var (
	// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no
	// checkpoint has been saved yet.
	ErrNoCheckpointFound = errors.New("no checkpoint found")

	// ErrServiceAlreadyStarted is returned if Run is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrOutOfOrderBlock is returned when the source delivers a block lower
	// than one already handled.
	ErrOutOfOrderBlock = errors.New("block received out of order")

	// ErrStreamClosed is returned when the source closes its stream while
	// the context is still active.
	ErrStreamClosed = errors.New("block stream closed unexpectedly")
)

// BlockEvent is one element of a block stream: either a message or the
// error that ended the stream at Height.
type BlockEvent struct {
	Height  uint64
	Message near.StreamerMessage
	Err     error
}

// BlockSource produces the archival block stream.
type BlockSource interface {
	// Subscribe streams the blocks from fromHeight onwards in ascending
	// height order. Heights without a block are skipped. The channel is
	// closed once ctx is done; a terminal failure is delivered as an event
	// with Err set before the channel closes.
	Subscribe(ctx context.Context, fromHeight uint64) (<-chan BlockEvent, error)
}

// CheckpointStorage reads the height of the last accounted-for block.
type CheckpointStorage interface {
	// LoadLatestCheckpoint returns the stored checkpoint, or
	// ErrNoCheckpointFound when none was saved yet.
	LoadLatestCheckpoint(ctx context.Context) (uint64, error)
}

// BlockHandler processes a single block.
type BlockHandler interface {
	// HandleBlock returns once every effect of msg is durable.
	HandleBlock(ctx context.Context, msg near.StreamerMessage) error
}

// Service runs the stream.
type Service interface {
	// Run streams and handles blocks until ctx is done, returning nil, or
	// until a block cannot be obtained or handled, returning the error.
	//
	// Returns ErrServiceAlreadyStarted if called more than once.
	Run(ctx context.Context) error
}
