package repository

import "context"

// SessionStorage persists string entries across restarts.
// Get returns ok=false for a missing key rather than an error.
type SessionStorage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
