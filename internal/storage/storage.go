// Package storage provides the durable key-value layer the workout store
// persists into. Values are raw JSON payloads; an absent key means "no data
// yet" and is reported via the found flag, not an error.
package storage

import "context"

// Storage keys for the two persisted payloads.
const (
	WorkoutsKey = "fittracker_workouts"
	ThemeKey    = "fittracker_theme"
)

// KV is the storage contract consumed by the core. Set is atomic per key.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
