package near

import (
	"encoding/json"
	"fmt"
)

// StatusKind enumerates the variants of an execution status.
type StatusKind uint8

const (
	StatusUnknown StatusKind = iota
	StatusFailure
	StatusSuccessValue
	StatusSuccessReceiptID
)

const (
	statusUnknownTag          = "Unknown"
	statusFailureTag          = "Failure"
	statusSuccessValueTag     = "SuccessValue"
	statusSuccessReceiptIDTag = "SuccessReceiptId"
)

// ExecutionStatus is the tagged status of an execution outcome.
//
// On the wire "Unknown" is a bare string and every other variant is an
// object with a single key naming the variant:
//
//	{"SuccessReceiptId": "<receipt id>"}
//	{"SuccessValue": "<base64>"}
//	{"Failure": {...}}
type ExecutionStatus struct {
	Kind    StatusKind
	Value   string          // SuccessValue payload or SuccessReceiptId receipt id
	Failure json.RawMessage // Failure payload, kept as-is
}

// IsUnknown reports whether the status is the Unknown variant.
func (s ExecutionStatus) IsUnknown() bool {
	return s.Kind == StatusUnknown
}

// SuccessReceiptID returns the receipt id of a SuccessReceiptId status.
func (s ExecutionStatus) SuccessReceiptID() (string, bool) {
	if s.Kind != StatusSuccessReceiptID {
		return "", false
	}

	return s.Value, true
}

// UnmarshalJSON decodes any of the status variants.
func (s *ExecutionStatus) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != statusUnknownTag {
			return fmt.Errorf("unsupported execution status %q", tag)
		}

		*s = ExecutionStatus{Kind: StatusUnknown}
		return nil
	}

	var variants map[string]json.RawMessage
	if err := json.Unmarshal(data, &variants); err != nil {
		return fmt.Errorf("invalid execution status: %w", err)
	}

	if len(variants) != 1 {
		return fmt.Errorf("execution status must have exactly one variant, got %d", len(variants))
	}

	for tag, payload := range variants {
		switch tag {
		case statusFailureTag:
			*s = ExecutionStatus{Kind: StatusFailure, Failure: append(json.RawMessage(nil), payload...)}
		case statusSuccessValueTag:
			*s = ExecutionStatus{Kind: StatusSuccessValue}
			return json.Unmarshal(payload, &s.Value)
		case statusSuccessReceiptIDTag:
			*s = ExecutionStatus{Kind: StatusSuccessReceiptID}
			return json.Unmarshal(payload, &s.Value)
		default:
			return fmt.Errorf("unsupported execution status %q", tag)
		}
	}

	return nil
}

// MarshalJSON encodes the status in the same tagged form it is decoded from.
func (s ExecutionStatus) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case StatusFailure:
		failure := s.Failure
		if len(failure) == 0 {
			failure = json.RawMessage("null")
		}
		return json.Marshal(map[string]json.RawMessage{statusFailureTag: failure})
	case StatusSuccessValue:
		return json.Marshal(map[string]string{statusSuccessValueTag: s.Value})
	case StatusSuccessReceiptID:
		return json.Marshal(map[string]string{statusSuccessReceiptIDTag: s.Value})
	default:
		return json.Marshal(statusUnknownTag)
	}
}
