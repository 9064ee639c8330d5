package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mattjoyce/hookrelay/internal/signature"
)

// ProviderLookup resolves the provider behind a public webhook URL.
type ProviderLookup interface {
	GetProvider(ctx context.Context, tenantSlug string, kind signature.Kind) (Provider, error)
}

// Cache keeps resolved providers in Redis so hot ingestion paths skip the
// store. Redis failures degrade to a direct lookup.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewCache connects to the Redis server at url (redis://host:port/db).
func NewCache(url string, ttl time.Duration, logger *slog.Logger) (*Cache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewCacheWithClient(redis.NewClient(opt), ttl, logger), nil
}

// NewCacheWithClient wraps an existing client.
func NewCacheWithClient(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{rdb: rdb, ttl: ttl, prefix: "hookrelay:provider:", logger: logger.With("component", "provider-cache")}
}

func (c *Cache) key(tenantSlug string, kind signature.Kind) string {
	return c.prefix + tenantSlug + ":" + string(kind)
}

// Resolve returns the cached provider or loads it through next and caches
// the result. Not-found results are not cached.
func (c *Cache) Resolve(ctx context.Context, next ProviderLookup, tenantSlug string, kind signature.Kind) (Provider, error) {
	key := c.key(tenantSlug, kind)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p Provider
		if jerr := json.Unmarshal(raw, &p); jerr == nil {
			return p, nil
		}
		c.logger.Warn("discarding undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("provider cache read failed", "error", err)
	}

	p, err := next.GetProvider(ctx, tenantSlug, kind)
	if err != nil {
		return Provider{}, err
	}
	if data, jerr := json.Marshal(p); jerr == nil {
		if serr := c.rdb.Set(ctx, key, data, c.ttl).Err(); serr != nil {
			c.logger.Warn("provider cache write failed", "error", serr)
		}
	}
	return p, nil
}

// Invalidate drops the cached entry after a provider changes.
func (c *Cache) Invalidate(ctx context.Context, tenantSlug string, kind signature.Kind) {
	if err := c.rdb.Del(ctx, c.key(tenantSlug, kind)).Err(); err != nil {
		c.logger.Warn("provider cache invalidate failed", "error", err)
	}
}

// Close releases the Redis connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
