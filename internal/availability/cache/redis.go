package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/availability"
	"github.com/fekuna/brewops-lot-service/internal/model"
	"github.com/fekuna/brewops-lot-service/pkg/cache"
)

// Store is the subset of *cache.RedisClient the snapshot cache needs.
type Store interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// SnapshotCache keeps availability snapshots in redis. It also serves as
// the lot usecase's Invalidator.
type SnapshotCache struct {
	store Store
	ttl   time.Duration
}

func NewSnapshotCache(store Store, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{store: store, ttl: ttl}
}

func key(breweryID, ingredientID string, category model.Category) string {
	return fmt.Sprintf("brewops:lots:availability:%s:%s:%s", breweryID, category, ingredientID)
}

func (c *SnapshotCache) Get(ctx context.Context, breweryID, ingredientID string, category model.Category) (*availability.Snapshot, error) {
	var snap availability.Snapshot
	if err := c.store.GetJSON(ctx, key(breweryID, ingredientID, category), &snap); err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, nil
		}
		return nil, err
	}
	if snap.Risk == nil {
		snap.Risk = map[string]model.LotRisk{}
	}
	return &snap, nil
}

func (c *SnapshotCache) Set(ctx context.Context, breweryID, ingredientID string, category model.Category, snap *availability.Snapshot) error {
	return c.store.SetJSON(ctx, key(breweryID, ingredientID, category), snap, c.ttl)
}

func (c *SnapshotCache) Invalidate(ctx context.Context, breweryID, ingredientID string, category model.Category) error {
	return c.store.Delete(ctx, key(breweryID, ingredientID, category))
}
