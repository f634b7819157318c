// Package cache provides a Redis read-through cache for product reads.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "product:"

// genKey lives outside keyPrefix so Invalidate's SCAN never deletes it.
const genKey = "product-cache:generation"

var errStale = errors.New("cache generation changed")

// ProductCache stores JSON-encoded product responses under the "product:" keyspace.
// A nil *ProductCache, or one built without a client, is a valid disabled cache.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

// ProductKey is the key of a single product aggregate.
func ProductKey(id uint) string { return "id:" + strconv.FormatUint(uint64(id), 10) }

// ListKey is the key of the full product list.
const ListKey = "list"

func (c *ProductCache) enabled() bool { return c != nil && c.client != nil }

// Fetch returns the cached value for key or calls load on a miss and stores
// the result. Concurrent misses for the same key share a single load, which
// runs detached from the caller's cancellation. A load that overlaps an
// Invalidate is returned but not stored.
// Cache failures are logged and never returned; load errors are returned
// as-is and not cached.
func Fetch[T any](ctx context.Context, c *ProductCache, key string, load func(context.Context) (T, error)) (T, error) {
	if !c.enabled() {
		return load(ctx)
	}

	var cached T
	hit, err := c.get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if hit {
		return cached, nil
	}

	shared := context.WithoutCancel(ctx)
	val, err, _ := c.group.Do(key, func() (any, error) {
		gen, genErr := generation(shared, c.client)
		v, loadErr := load(shared)
		if loadErr != nil {
			return nil, loadErr
		}
		if genErr != nil {
			log.Warn().Err(genErr).Str("key", key).Msg("cache generation read failed")
			return v, nil
		}
		if setErr := c.setIfCurrent(shared, key, v, gen); setErr != nil {
			log.Warn().Err(setErr).Str("key", key).Msg("cache write failed")
		}
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return val.(T), nil
}

// Invalidate drops every product key. Called after any committed mutation of
// the product tree. The generation bump comes first so loads already in
// flight cannot store what they read before the commit.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.client.Incr(ctx, genKey).Err(); err != nil {
		log.Warn().Err(err).Msg("cache generation bump failed")
	}
	if err := c.deletePattern(ctx, keyPrefix+"*"); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}

func (c *ProductCache) get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal: %w", err)
	}
	return true, nil
}

// setIfCurrent stores value only while the generation still equals gen.
// WATCH makes the check and the SET atomic against a concurrent Invalidate.
func (c *ProductCache) setIfCurrent(ctx context.Context, key string, value any, gen int64) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, keyPrefix+key, data, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, errStale) || errors.Is(err, redis.TxFailedErr) {
		log.Debug().Str("key", key).Msg("cache write skipped, invalidated during load")
		return nil
	}
	return err
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// generation returns the invalidation counter; a missing key is generation 0.
func generation(ctx context.Context, g getter) (int64, error) {
	n, err := g.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return n, nil
}

func (c *ProductCache) deletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
