package store

import "context"

// Fixed keys for the two persisted collections.
const (
	KeyLoans     = "tredgate_loans"
	KeyAuditLogs = "tredgate_audit_logs"
)

// Store is a durable key-value store holding one JSON document per key.
// Read returns ok=false when the key has never been written. Callers own
// decoding; a store never interprets the bytes it holds.
type Store interface {
	Read(ctx context.Context, key string) (value []byte, ok bool, err error)
	Write(ctx context.Context, key string, value []byte) error
}
