package cache

import (
	"context"
	"time"
)

// NullCache discards writes and misses on every read. The pipeline runner
// falls back to it for --no-cache and for an unreachable redis.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache returns a [NullCache].
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }
