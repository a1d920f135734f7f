package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const cacheTTL = time.Hour

// CachedStore decorates a Store with a redis read-through cache on get-by-id.
// Every mutation invalidates the cached document before it is applied, so the
// backing store stays the source of truth; a cache failure only costs the
// round-trip.
type CachedStore struct {
	Client   *redis.Client
	Internal Store
}

func (cs *CachedStore) key(collection, id string) string {
	return "doc:" + collection + ":" + id
}

func (cs *CachedStore) invalidate(ctx context.Context, collection, id string) {
	if err := cs.Client.Del(ctx, cs.key(collection, id)).Err(); err != nil {
		log.Warn().Err(err).Str("component", "cache").Msg("failed to invalidate cached document")
	}
}

func (cs *CachedStore) Get(ctx context.Context, collection, id string, out interface{}) error {
	raw, err := cs.Client.Get(ctx, cs.key(collection, id)).Result()
	if err == nil {
		if json.Unmarshal([]byte(raw), out) == nil {
			return nil
		}
	}
	if err := cs.Internal.Get(ctx, collection, id, out); err != nil {
		return err
	}
	if encoded, err := json.Marshal(out); err == nil {
		cs.Client.Set(ctx, cs.key(collection, id), string(encoded), cacheTTL)
	}
	return nil
}

func (cs *CachedStore) Put(ctx context.Context, collection, id string, doc interface{}) error {
	cs.invalidate(ctx, collection, id)
	return cs.Internal.Put(ctx, collection, id, doc)
}

func (cs *CachedStore) Delete(ctx context.Context, collection, id string) error {
	cs.invalidate(ctx, collection, id)
	return cs.Internal.Delete(ctx, collection, id)
}

func (cs *CachedStore) AddToSet(ctx context.Context, collection, id, field, value string) error {
	cs.invalidate(ctx, collection, id)
	return cs.Internal.AddToSet(ctx, collection, id, field, value)
}

func (cs *CachedStore) RemoveFromSet(ctx context.Context, collection, id, field, value string) error {
	cs.invalidate(ctx, collection, id)
	return cs.Internal.RemoveFromSet(ctx, collection, id, field, value)
}

func (cs *CachedStore) ApplySetOps(ctx context.Context, ops ...SetOp) error {
	for _, op := range ops {
		cs.invalidate(ctx, op.Collection, op.ID)
	}
	return cs.Internal.ApplySetOps(ctx, ops...)
}

func (cs *CachedStore) AppendToList(ctx context.Context, collection, id, field string, value interface{}) error {
	cs.invalidate(ctx, collection, id)
	return cs.Internal.AppendToList(ctx, collection, id, field, value)
}

func (cs *CachedStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	cs.invalidate(ctx, collection, id)
	return cs.Internal.UpdateFields(ctx, collection, id, fields)
}

// Query results are not cached; list shapes churn on every mutation and the
// feed endpoints refetch on open anyway.
func (cs *CachedStore) Query(ctx context.Context, collection string, q Query, out interface{}) error {
	return cs.Internal.Query(ctx, collection, q, out)
}
