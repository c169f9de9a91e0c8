package ports

import "context"

// KeyValueStore defines the contract for the persisted settings store.
// Get returns a NotFound error when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// StoreBackend is a KeyValueStore with a connection lifecycle
type StoreBackend interface {
	KeyValueStore
	Ping(ctx context.Context) error
	Close() error
}
