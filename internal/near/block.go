// Package near defines the subset of the NEAR indexer data model that the
// pipeline reads: streamer messages, shards, chunks, transactions and
// receipt execution outcomes.
//
// Only the fields used by correlation and checkpointing are typed. The raw
// JSON of every decoded StreamerMessage is retained so that re-encoding a
// message yields the full record exactly as the archival source produced it.
package near

import "encoding/json"

// BlockHeader carries the identifying fields of a block header.
type BlockHeader struct {
	Height    uint64 `json:"height"`
	Hash      string `json:"hash"`
	PrevHash  string `json:"prev_hash"`
	Timestamp uint64 `json:"timestamp"`
}

// Block is the block view embedded in a streamer message.
type Block struct {
	Author string      `json:"author"`
	Header BlockHeader `json:"header"`
}

// SignedTransaction is a transaction as submitted by a user.
type SignedTransaction struct {
	SignerID   string `json:"signer_id"`
	ReceiverID string `json:"receiver_id"`
	Nonce      uint64 `json:"nonce"`
	Hash       string `json:"hash"`
}

// ExecutionOutcome is the result of executing a transaction or a receipt.
type ExecutionOutcome struct {
	Logs        []string        `json:"logs"`
	ReceiptIDs  []string        `json:"receipt_ids"`
	GasBurnt    uint64          `json:"gas_burnt"`
	TokensBurnt string          `json:"tokens_burnt"`
	ExecutorID  string          `json:"executor_id"`
	Status      ExecutionStatus `json:"status"`
}

// ExecutionOutcomeWithID pairs an outcome with the id of the transaction or
// receipt that produced it.
type ExecutionOutcomeWithID struct {
	ID        string           `json:"id"`
	BlockHash string           `json:"block_hash"`
	Outcome   ExecutionOutcome `json:"outcome"`
}

// TransactionOutcome wraps the execution outcome of a chunk transaction.
type TransactionOutcome struct {
	ExecutionOutcome ExecutionOutcomeWithID `json:"execution_outcome"`
}

// Transaction is a chunk transaction together with its outcome.
type Transaction struct {
	Transaction SignedTransaction  `json:"transaction"`
	Outcome     TransactionOutcome `json:"outcome"`
}

// Chunk holds the transactions included in a shard for one block.
type Chunk struct {
	Author       string        `json:"author"`
	Transactions []Transaction `json:"transactions"`
}

// ReceiptExecutionOutcome is the outcome of a receipt executed in a shard.
// The receipt body is not interpreted.
type ReceiptExecutionOutcome struct {
	ExecutionOutcome ExecutionOutcomeWithID `json:"execution_outcome"`
	Receipt          json.RawMessage        `json:"receipt,omitempty"`
}

// Shard is the per-shard slice of a streamer message. Chunk is nil when the
// shard produced no chunk for the block.
type Shard struct {
	ShardID                  uint64                    `json:"shard_id"`
	Chunk                    *Chunk                    `json:"chunk"`
	ReceiptExecutionOutcomes []ReceiptExecutionOutcome `json:"receipt_execution_outcomes"`
}

// StreamerMessage is one block record of the archival stream.
type StreamerMessage struct {
	Block  Block   `json:"block"`
	Shards []Shard `json:"shards"`

	raw json.RawMessage
}

// streamerMessage has the fields of StreamerMessage without its methods.
type streamerMessage StreamerMessage

// Height returns the height of the message's block.
func (m StreamerMessage) Height() uint64 {
	return m.Block.Header.Height
}

// UnmarshalJSON decodes the typed fields and keeps a copy of the raw input.
func (m *StreamerMessage) UnmarshalJSON(data []byte) error {
	var decoded streamerMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*m = StreamerMessage(decoded)
	m.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the raw record when the message was decoded from JSON,
// and an encoding of the typed fields otherwise.
func (m StreamerMessage) MarshalJSON() ([]byte, error) {
	if len(m.raw) > 0 {
		return m.raw, nil
	}

	return json.Marshal(streamerMessage(m))
}
