package blockproc

import (
	"time"

	"github.com/gabapcia/lakewatch/internal/blockpub"
	"github.com/gabapcia/lakewatch/internal/near"

	"github.com/google/uuid"
)

// blockProcessingState tracks the handling of a single block, from the
// moment it is received until its processing is finalized.
type blockProcessingState struct {
	processingID string    // Unique identifier of this processing (UUIDv7)
	receivedAt   time.Time // When the block was received for processing
	height       uint64    // Height of the processed block
	hash         string    // Hash of the processed block

	relevant      bool // Correlation found watched activity
	receiptsSaved int  // Receipt links written so far
	pushed        bool // The block reached the queue
	checkpointed  bool // The checkpoint moved to this block

	finalized   bool       // Processing finished, successfully or not
	finalizedAt *time.Time // When processing finished (nil until finalized)
	err         error      // Terminal error, nil on success
}

// newBlockProcessingState starts tracking msg under a new processing id.
func newBlockProcessingState(msg near.StreamerMessage) blockProcessingState {
	return blockProcessingState{
		processingID: uuid.Must(uuid.NewV7()).String(),
		receivedAt:   time.Now().UTC(),
		height:       msg.Height(),
		hash:         msg.Block.Header.Hash,
	}
}

// recordPublish copies the writes reported by the publisher.
// This method is a no-op if the state is already finalized.
func (s *blockProcessingState) recordPublish(result blockpub.Result) {
	if s.finalized {
		return
	}

	s.receiptsSaved = result.ReceiptsSaved
	s.pushed = result.Pushed
	s.checkpointed = result.Checkpointed
}

// finalizeWithSuccess marks the processing as successfully completed.
// This method is a no-op if the state is already finalized.
func (s *blockProcessingState) finalizeWithSuccess() {
	if s.finalized {
		return
	}

	now := time.Now().UTC()

	s.finalized = true
	s.finalizedAt = &now
	s.err = nil
}

// finalizeWithFailure marks the processing as failed with err.
// This method is a no-op if the state is already finalized.
func (s *blockProcessingState) finalizeWithFailure(err error) {
	if s.finalized {
		return
	}

	now := time.Now().UTC()

	s.finalized = true
	s.finalizedAt = &now
	s.err = err
}

// duration returns the time spent on the block, up to now when the
// processing is still running.
func (s blockProcessingState) duration() time.Duration {
	if s.finalizedAt == nil {
		return time.Since(s.receivedAt)
	}

	return s.finalizedAt.Sub(s.receivedAt)
}
