package cache

import (
	"fmt"
	"ratesvc/internal/domain"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

// RistrettoSnapshotCache fronts the snapshot history store. Persisted
// snapshots are immutable, so entries never need invalidation.
type RistrettoSnapshotCache struct {
	cache *ristretto.Cache
}

func NewSnapshotCache(maxItems int64) (*RistrettoSnapshotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache failed: %w", err)
	}
	return &RistrettoSnapshotCache{cache: c}, nil
}

func (c *RistrettoSnapshotCache) Get(id uuid.UUID) (*domain.StoredSnapshot, bool) {
	if v, ok := c.cache.Get(id.String()); ok {
		snap, ok := v.(*domain.StoredSnapshot)
		return snap, ok
	}
	return nil, false
}

func (c *RistrettoSnapshotCache) Set(id uuid.UUID, snapshot *domain.StoredSnapshot) {
	c.cache.Set(id.String(), snapshot, 1)
}

func (c *RistrettoSnapshotCache) Close() { c.cache.Close() }
