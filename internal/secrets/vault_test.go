package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/signature"
	"github.com/mattjoyce/hookrelay/internal/storage/storagetest"
)

type failingStore struct{}

func (failingStore) SecretCiphertext(context.Context, string, signature.Kind) (string, error) {
	return "", errors.New("database is locked")
}

func (failingStore) SetSecretCiphertext(context.Context, string, signature.Kind, string, string) error {
	return errors.New("database is locked")
}

func TestVaultRoundTripThroughDirectory(t *testing.T) {
	ctx := context.Background()
	db := storagetest.SQLite(t)
	dir := directory.NewStore(db)

	tenant, err := dir.CreateTenant(ctx, "Acme", "acme", 0)
	require.NoError(t, err)
	_, err = dir.CreateProvider(ctx, tenant.ID, signature.Stripe, "")
	require.NoError(t, err)

	v, err := NewVault(dir, testKey())
	require.NoError(t, err)

	_, err = v.GetSecret(ctx, tenant.ID, signature.Stripe)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, v.SetSecret(ctx, tenant.ID, signature.Stripe, []byte("whsec_test"), "ops"))
	got, err := v.GetSecret(ctx, tenant.ID, signature.Stripe)
	require.NoError(t, err)
	assert.Equal(t, "whsec_test", string(got))

	var stored string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT secret_ciphertext FROM providers WHERE tenant_id = ?`, tenant.ID).Scan(&stored))
	assert.NotContains(t, stored, "whsec_test")

	err = v.SetSecret(ctx, tenant.ID, signature.GitHub, []byte("x"), "ops")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestVaultCiphertextBoundToOwner(t *testing.T) {
	ctx := context.Background()
	db := storagetest.SQLite(t)
	dir := directory.NewStore(db)

	tenant, err := dir.CreateTenant(ctx, "Acme", "acme", 0)
	require.NoError(t, err)
	for _, k := range []signature.Kind{signature.Stripe, signature.GitHub} {
		_, err := dir.CreateProvider(ctx, tenant.ID, k, "")
		require.NoError(t, err)
	}
	v, err := NewVault(dir, testKey())
	require.NoError(t, err)
	require.NoError(t, v.SetSecret(ctx, tenant.ID, signature.Stripe, []byte("stripe-secret"), "ops"))

	// Copy the stripe ciphertext onto the github provider.
	_, err = db.ExecContext(ctx, `
UPDATE providers SET secret_ciphertext = (SELECT secret_ciphertext FROM providers WHERE kind = 'stripe')
WHERE kind = 'github'`)
	require.NoError(t, err)

	_, err = v.GetSecret(ctx, tenant.ID, signature.GitHub)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestVaultStoreFailureIsUnavailable(t *testing.T) {
	v, err := NewVault(failingStore{}, testKey())
	require.NoError(t, err)

	_, err = v.GetSecret(context.Background(), "t1", signature.Stripe)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, errors.Is(v.SetSecret(context.Background(), "t1", signature.Stripe, []byte("x"), ""), ErrUnavailable))
}
