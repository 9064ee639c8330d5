// Package directory holds the tenant and provider records the ingestion
// core reads. Apart from secret rotation and the activation toggle, these
// records are administered elsewhere.
package directory

import (
	"errors"
	"time"

	"github.com/mattjoyce/hookrelay/internal/signature"
)

var (
	ErrNotFound = errors.New("directory: not found")
	ErrConflict = errors.New("directory: already exists")
)

// Tenant is an isolated customer account.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Active    bool      `json:"active"`
	Quota     int64     `json:"quota"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider is a tenant's configured webhook source of one kind. The
// signing secret is never carried on this struct.
type Provider struct {
	ID           string         `json:"id"`
	TenantID     string         `json:"tenant_id"`
	TenantSlug   string         `json:"tenant_slug"`
	Kind         signature.Kind `json:"kind"`
	Active       bool           `json:"active"`
	TenantActive bool           `json:"tenant_active"`
	HasSecret    bool           `json:"has_secret"`
	ForwardURL   string         `json:"forward_url,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Accepting reports whether deliveries for p should be processed.
func (p Provider) Accepting() bool {
	return p.Active && p.TenantActive && p.HasSecret
}
