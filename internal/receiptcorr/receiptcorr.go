// Package receiptcorr links NEAR execution receipts to the transactions that
// originated them.
//
// NEAR executes a transaction as a tree of asynchronous receipts that may land
// in later blocks. Correlating a block yields, for the receipts spawned by
// activity of the watched accounts, the hash of the transaction at the root of
// their tree, plus whether the block carries any watched activity at all.
package receiptcorr

import (
	"context"
	"errors"

	"github.com/gabapcia/lakewatch/internal/near"
)

// ErrTransactionNotFound is returned by TransactionLookup when no transaction
// is known for a receipt id.
var ErrTransactionNotFound = errors.New("transaction not found for receipt")

// ReceiptTxMap maps receipt ids to the hash of their originating transaction.
// A map is built per block and never outlives it.
type ReceiptTxMap map[string]string

// Correlation is the result of correlating one block.
type Correlation struct {
	Relevant bool         // true when a watched account executed a receipt in the block
	Receipts ReceiptTxMap // receipt -> transaction links discovered in the block
}

// TransactionLookup resolves receipt ids recorded while processing earlier blocks.
type TransactionLookup interface {
	// LookupTransaction returns the hash of the transaction that originated
	// receiptID, or ErrTransactionNotFound when none is recorded.
	LookupTransaction(ctx context.Context, receiptID string) (string, error)
}

// Service correlates the receipts of a block with their transactions.
type Service interface {
	// Correlate inspects msg and returns its relevance and the receipt links
	// it introduces. The only side effects are lookups of earlier links.
	Correlate(ctx context.Context, msg near.StreamerMessage) (Correlation, error)
}
