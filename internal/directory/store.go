package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mattjoyce/hookrelay/internal/signature"
	"github.com/mattjoyce/hookrelay/internal/storage"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)

// Store reads and writes tenants and providers.
type Store struct {
	db  *storage.DB
	now func() time.Time
}

func NewStore(db *storage.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// CreateTenant registers a tenant. The slug must be URL-safe and unique.
func (s *Store) CreateTenant(ctx context.Context, name, slug string, quota int64) (Tenant, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !slugPattern.MatchString(slug) {
		return Tenant{}, fmt.Errorf("invalid tenant slug %q", slug)
	}
	if strings.TrimSpace(name) == "" {
		name = slug
	}

	t := Tenant{ID: uuid.NewString(), Name: name, Slug: slug, Active: true, Quota: quota, CreatedAt: s.now().UTC()}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return Tenant{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM tenants WHERE slug = ?;`, slug).Scan(&existing)
	switch {
	case err == nil:
		return Tenant{}, fmt.Errorf("tenant %q: %w", slug, ErrConflict)
	case !errors.Is(err, sql.ErrNoRows):
		return Tenant{}, fmt.Errorf("lookup tenant: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO tenants(id, name, slug, active, quota, created_at)
VALUES(?, ?, ?, 1, ?, ?);
`, t.ID, t.Name, t.Slug, t.Quota, storage.FormatTime(t.CreatedAt)); err != nil {
		return Tenant{}, fmt.Errorf("insert tenant: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Tenant{}, fmt.Errorf("commit: %w", err)
	}
	return t, nil
}

// TenantBySlug looks a tenant up by its URL slug.
func (s *Store) TenantBySlug(ctx context.Context, slug string) (Tenant, error) {
	var (
		t       Tenant
		active  bool
		created string
	)
	err := s.db.QueryRowContext(ctx, `
SELECT id, name, slug, active, quota, created_at FROM tenants WHERE slug = ?;
`, strings.ToLower(slug)).Scan(&t.ID, &t.Name, &t.Slug, &active, &t.Quota, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Tenant{}, fmt.Errorf("tenant %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return Tenant{}, fmt.Errorf("query tenant: %w", err)
	}
	t.Active = active
	if t.CreatedAt, err = storage.ParseTime(created); err != nil {
		return Tenant{}, err
	}
	return t, nil
}

// SetTenantActive flips a tenant's active flag.
func (s *Store) SetTenantActive(ctx context.Context, tenantID string, active bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tenants SET active = ? WHERE id = ?;`, storage.BoolInt(active), tenantID)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("tenant %s: %w", tenantID, ErrNotFound)
	}
	return nil
}

// CreateProvider configures a provider kind for a tenant. At most one
// provider of each kind exists per tenant.
func (s *Store) CreateProvider(ctx context.Context, tenantID string, kind signature.Kind, forwardURL string) (Provider, error) {
	if _, ok := kind.Convention(); !ok {
		return Provider{}, fmt.Errorf("unknown provider kind %q", kind)
	}
	now := s.now().UTC()
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return Provider{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM providers WHERE tenant_id = ? AND kind = ?;`, tenantID, string(kind)).Scan(&existing)
	switch {
	case err == nil:
		return Provider{}, fmt.Errorf("provider %s for tenant %s: %w", kind, tenantID, ErrConflict)
	case !errors.Is(err, sql.ErrNoRows):
		return Provider{}, fmt.Errorf("lookup provider: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO providers(id, tenant_id, kind, active, forward_url, created_at, updated_at)
VALUES(?, ?, ?, 1, ?, ?, ?);
`, id, tenantID, string(kind), storage.NullString(forwardURL), storage.FormatTime(now), storage.FormatTime(now)); err != nil {
		return Provider{}, fmt.Errorf("insert provider: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Provider{}, fmt.Errorf("commit: %w", err)
	}
	return s.providerWhere(ctx, `p.id = ?`, id)
}

const providerColumns = `
SELECT p.id, p.tenant_id, t.slug, p.kind, p.active, t.active,
       CASE WHEN p.secret_ciphertext IS NULL OR p.secret_ciphertext = '' THEN 0 ELSE 1 END,
       p.forward_url, p.created_at, p.updated_at
FROM providers p JOIN tenants t ON t.id = p.tenant_id
WHERE `

// GetProvider resolves the provider addressed by a public webhook URL.
// Inactive providers are returned; callers check Accepting.
func (s *Store) GetProvider(ctx context.Context, tenantSlug string, kind signature.Kind) (Provider, error) {
	return s.providerWhere(ctx, `t.slug = ? AND p.kind = ?`, strings.ToLower(tenantSlug), string(kind))
}

// ProviderByID loads a provider by primary key.
func (s *Store) ProviderByID(ctx context.Context, id string) (Provider, error) {
	return s.providerWhere(ctx, `p.id = ?`, id)
}

// ProviderFor loads a tenant's provider of the given kind.
func (s *Store) ProviderFor(ctx context.Context, tenantID string, kind signature.Kind) (Provider, error) {
	return s.providerWhere(ctx, `p.tenant_id = ? AND p.kind = ?`, tenantID, string(kind))
}

// ListProviders returns every provider configured for tenantID.
func (s *Store) ListProviders(ctx context.Context, tenantID string) ([]Provider, error) {
	rows, err := s.db.QueryContext(ctx, providerColumns+`p.tenant_id = ? ORDER BY p.kind;`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var out []Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) providerWhere(ctx context.Context, where string, args ...any) (Provider, error) {
	p, err := scanProvider(s.db.QueryRowContext(ctx, providerColumns+where+`;`, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Provider{}, fmt.Errorf("provider: %w", ErrNotFound)
	}
	return p, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProvider(row scanner) (Provider, error) {
	var (
		p                Provider
		kind             string
		active, tActive  bool
		hasSecret        bool
		forward          sql.NullString
		created, updated string
	)
	if err := row.Scan(&p.ID, &p.TenantID, &p.TenantSlug, &kind, &active, &tActive, &hasSecret, &forward, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Provider{}, err
		}
		return Provider{}, fmt.Errorf("scan provider: %w", err)
	}
	p.Kind = signature.Kind(kind)
	p.Active, p.TenantActive, p.HasSecret = active, tActive, hasSecret
	p.ForwardURL = forward.String

	var err error
	if p.CreatedAt, err = storage.ParseTime(created); err != nil {
		return Provider{}, err
	}
	if p.UpdatedAt, err = storage.ParseTime(updated); err != nil {
		return Provider{}, err
	}
	return p, nil
}

// SetProviderActive toggles a provider and records who did it.
func (s *Store) SetProviderActive(ctx context.Context, tenantID string, kind signature.Kind, active bool, actor string) (Provider, error) {
	now := s.now().UTC()
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return Provider{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `
UPDATE providers SET active = ?, updated_at = ?
WHERE tenant_id = ? AND kind = ?
RETURNING id;
`, storage.BoolInt(active), storage.FormatTime(now), tenantID, string(kind)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return Provider{}, fmt.Errorf("provider %s for tenant %s: %w", kind, tenantID, ErrNotFound)
	}
	if err != nil {
		return Provider{}, fmt.Errorf("update provider: %w", err)
	}

	action := storage.AuditProviderDeactivated
	if active {
		action = storage.AuditProviderActivated
	}
	if err := storage.WriteAudit(ctx, tx, storage.AuditEntry{TenantID: tenantID, Actor: actor, Action: action, Subject: id}, now); err != nil {
		return Provider{}, err
	}
	if err := tx.Commit(); err != nil {
		return Provider{}, fmt.Errorf("commit: %w", err)
	}
	return s.ProviderByID(ctx, id)
}

// SecretCiphertext returns the encrypted signing secret of an active
// provider belonging to an active tenant.
func (s *Store) SecretCiphertext(ctx context.Context, tenantID string, kind signature.Kind) (string, error) {
	var ct sql.NullString
	err := s.db.QueryRowContext(ctx, `
SELECT p.secret_ciphertext
FROM providers p JOIN tenants t ON t.id = p.tenant_id
WHERE p.tenant_id = ? AND p.kind = ? AND p.active = 1 AND t.active = 1;
`, tenantID, string(kind)).Scan(&ct)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && ct.String == "") {
		return "", fmt.Errorf("secret for %s/%s: %w", tenantID, kind, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("query secret: %w", err)
	}
	return ct.String, nil
}

// SetSecretCiphertext replaces a provider's encrypted secret and audits
// the rotation.
func (s *Store) SetSecretCiphertext(ctx context.Context, tenantID string, kind signature.Kind, ciphertext, actor string) error {
	now := s.now().UTC()
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `
UPDATE providers SET secret_ciphertext = ?, updated_at = ?
WHERE tenant_id = ? AND kind = ?
RETURNING id;
`, ciphertext, storage.FormatTime(now), tenantID, string(kind)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("provider %s for tenant %s: %w", kind, tenantID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update secret: %w", err)
	}
	if err := storage.WriteAudit(ctx, tx, storage.AuditEntry{TenantID: tenantID, Actor: actor, Action: storage.AuditSecretRotated, Subject: id}, now); err != nil {
		return err
	}
	return tx.Commit()
}
