package cache

import (
	"context"
)

// Cache stores rendered responses keyed by the canonical request string.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// Nop is the backend used when caching is disabled.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Nop) Set(context.Context, string, []byte) error  { return nil }
