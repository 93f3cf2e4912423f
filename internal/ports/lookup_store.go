package ports

import "context"

// Port: a key/value cache for external lookup results.
//
// Unlike the lookup providers, Get and Put return errors: the caller decides
// what a cache failure means. For enrichment lookups it is never fatal --
// the provider logs the error and falls through to the upstream service.
type LookupStore interface {
	// Get returns the cached value for key; found is false on a miss.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Put stores value under key.
	Put(ctx context.Context, key string, value string) error
}
