// Package store provides the durable string key-value store backing
// the analysis cache. The cache is one JSON document under one fixed
// key; the store itself knows nothing about its contents.
package store

import "context"

// Store is an opaque string key-value interface. Get reports a miss
// with ok=false, not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
