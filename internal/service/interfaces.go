// Package service defines the interfaces between the application layers.
package service

import "context"

// KVStore is the contract for the persistence layer: an asynchronous,
// crash-tolerant string-keyed store. Higher layers serialize their records
// to JSON blobs under stable, versioned keys.
type KVStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value atomically.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	Close() error
}

// SettingsReader exposes the configuration the ledger needs without
// binding it to the settings store implementation.
type SettingsReader interface {
	// DefaultCurrency returns the user's configured currency code.
	DefaultCurrency(ctx context.Context) string
}
