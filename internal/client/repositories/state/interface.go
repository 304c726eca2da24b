// Package state persists the small set of client slots that must survive
// restarts: the session token, the cached role and the free-scan counter.
// It is a plain key-value table, the native equivalent of the browser's
// local storage in the web client.
package state

import "context"

// Store keys. Values are stored as strings; freeScanCount is a
// string-encoded integer, absent means 0.
const (
	KeyToken         = "token"
	KeyUserRole      = "user_role"
	KeyFreeScanCount = "freeScanCount"
)

type Repository interface {
	// Get returns the value for key, or "" with a nil error when absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	// DeleteMany removes all given keys atomically, so related slots like
	// token and role never survive each other after a partial failure.
	DeleteMany(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
