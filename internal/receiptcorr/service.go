package receiptcorr

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/lakewatch/internal/near"
	"github.com/gabapcia/lakewatch/internal/pkg/logger"
	"github.com/gabapcia/lakewatch/internal/pkg/types"
)

// service implements Service for a fixed set of watched accounts.
type service struct {
	accounts types.Set[string]
	lookup   TransactionLookup
}

var _ Service = (*service)(nil)

// Correlate runs two passes over the shards of msg.
//
// The first pass walks the receipt execution outcomes. An outcome executed by
// a watched account with a known status makes the block relevant, and when the
// transaction behind the outcome's own receipt is already recorded, every
// receipt it spawned is linked to that transaction.
//
// The second pass walks the chunk transactions sent to watched accounts and
// links the receipt each one was converted into to the transaction hash. It
// overwrites links from the first pass for the same receipt.
func (s *service) Correlate(ctx context.Context, msg near.StreamerMessage) (Correlation, error) {
	result := Correlation{Receipts: make(ReceiptTxMap)}

	for _, shard := range msg.Shards {
		for _, reo := range shard.ReceiptExecutionOutcomes {
			outcome := reo.ExecutionOutcome
			if outcome.Outcome.Status.IsUnknown() || !s.accounts.Has(outcome.Outcome.ExecutorID) {
				continue
			}

			result.Relevant = true

			txHash, err := s.lookup.LookupTransaction(ctx, outcome.ID)
			if errors.Is(err, ErrTransactionNotFound) {
				logger.Debug(ctx, "no transaction recorded for receipt",
					"receipt.id", outcome.ID,
					"receipt.executor", outcome.Outcome.ExecutorID,
				)
				continue
			}
			if err != nil {
				return Correlation{}, fmt.Errorf("failed to look up transaction of receipt %s: %w", outcome.ID, err)
			}

			for _, receiptID := range outcome.Outcome.ReceiptIDs {
				result.Receipts[receiptID] = txHash
			}
		}
	}

	for _, shard := range msg.Shards {
		if shard.Chunk == nil {
			continue
		}

		for _, tx := range shard.Chunk.Transactions {
			if !s.accounts.Has(tx.Transaction.ReceiverID) {
				continue
			}

			if receiptID, ok := tx.Outcome.ExecutionOutcome.Outcome.Status.SuccessReceiptID(); ok {
				result.Receipts[receiptID] = tx.Transaction.Hash
			}
		}
	}

	return result, nil
}

// New returns a Service watching accounts and resolving earlier links
// through lookup.
func New(accounts types.Set[string], lookup TransactionLookup) *service {
	return &service{
		accounts: accounts,
		lookup:   lookup,
	}
}
