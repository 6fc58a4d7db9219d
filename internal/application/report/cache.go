package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SnapshotCache memoizes computed report payloads. Implementations are
// best-effort: a cache that is down behaves like a cache that always
// misses, and reports fall back to computing fresh.
type SnapshotCache interface {
	// Get returns a cached payload and whether it was present
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a payload with a TTL
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)

	// Generation returns the owner's current invalidation generation.
	// It is folded into every cache key, so bumping it orphans all of
	// the owner's snapshots at once.
	Generation(ctx context.Context, ownerID uuid.UUID) int64
}

// Invalidator bumps an owner's generation counter. Write paths call this
// after committing so stale snapshots are never served.
type Invalidator interface {
	Invalidate(ctx context.Context, ownerID uuid.UUID)
}

// NoopCache disables memoization; every lookup misses
type NoopCache struct{}

// Get always misses
func (NoopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

// Set discards the payload
func (NoopCache) Set(context.Context, string, []byte, time.Duration) {}

// Generation is constant
func (NoopCache) Generation(context.Context, uuid.UUID) int64 { return 0 }

// Invalidate does nothing
func (NoopCache) Invalidate(context.Context, uuid.UUID) {}
