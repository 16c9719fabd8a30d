// Package credentials stores the client's persisted key-value state
// (bearer token, cached user profile) in the local database. No other
// component touches these keys directly.
package credentials

import "context"

// Repository is the key-value persistence capability injected into the
// credential store. Implementations may be durable (sqlite) or in-memory.
type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a single key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}
