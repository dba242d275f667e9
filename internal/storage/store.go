// Package storage provides the flat string key/value store all tracker
// state lives in, with SQLite-backed and in-memory implementations.
package storage

import "context"

// Store is a flat namespace of string keys and string values.
//
// Contract:
//   - Get returns ("", nil) when the key is absent. Stored values in this
//     application are never empty, so the zero value is unambiguous.
//   - Set upserts a single key atomically.
//   - Delete is idempotent.
//   - There are no cross-key transactions; callers that write several keys
//     in a row may be interrupted between writes.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
