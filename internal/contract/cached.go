package contract

import (
	"context"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

// Cached puts a provider cache in front of GetProvider and invalidates it
// on provider mutations made through this Store. Changes made elsewhere
// become visible when the cache entry expires.
type Cached struct {
	Store
	cache *directory.Cache
}

func NewCached(inner Store, cache *directory.Cache) *Cached {
	return &Cached{Store: inner, cache: cache}
}

func (c *Cached) GetProvider(ctx context.Context, tenantSlug string, kind signature.Kind) (directory.Provider, error) {
	return c.cache.Resolve(ctx, c.Store, tenantSlug, kind)
}

func (c *Cached) RotateProviderSecret(ctx context.Context, tenantID string, kind signature.Kind, secret []byte, actor string) (directory.Provider, error) {
	p, err := c.Store.RotateProviderSecret(ctx, tenantID, kind, secret, actor)
	if err == nil {
		c.cache.Invalidate(ctx, p.TenantSlug, kind)
	}
	return p, err
}

func (c *Cached) SetProviderActive(ctx context.Context, tenantID string, kind signature.Kind, active bool, actor string) (directory.Provider, error) {
	p, err := c.Store.SetProviderActive(ctx, tenantID, kind, active, actor)
	if err == nil {
		c.cache.Invalidate(ctx, p.TenantSlug, kind)
	}
	return p, err
}
