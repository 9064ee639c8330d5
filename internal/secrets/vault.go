// Package secrets resolves provider signing secrets. Secrets rest
// encrypted in the directory and are decrypted on demand with a master key
// that is supplied once at startup.
package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

var (
	// ErrNotFound means no active provider, or no secret configured.
	ErrNotFound = errors.New("secrets: not found")
	// ErrUnavailable covers storage failures and undecryptable secrets.
	ErrUnavailable = errors.New("secrets: unavailable")
)

// CiphertextStore persists encrypted secrets. *directory.Store satisfies it.
type CiphertextStore interface {
	SecretCiphertext(ctx context.Context, tenantID string, kind signature.Kind) (string, error)
	SetSecretCiphertext(ctx context.Context, tenantID string, kind signature.Kind, ciphertext, actor string) error
}

// Vault encrypts and decrypts provider secrets.
type Vault struct {
	store  CiphertextStore
	cipher *Cipher
}

// NewVault builds a Vault around a master key.
func NewVault(store CiphertextStore, masterKey []byte) (*Vault, error) {
	c, err := NewCipher(masterKey)
	if err != nil {
		return nil, err
	}
	return &Vault{store: store, cipher: c}, nil
}

func additionalData(tenantID string, kind signature.Kind) []byte {
	return []byte(tenantID + "/" + string(kind))
}

// GetSecret returns the plaintext signing secret for a tenant's provider.
func (v *Vault) GetSecret(ctx context.Context, tenantID string, kind signature.Kind) ([]byte, error) {
	ct, err := v.store.SecretCiphertext(ctx, tenantID, kind)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	plain, err := v.cipher.Open(ct, additionalData(tenantID, kind))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return plain, nil
}

// SetSecret encrypts and stores a new secret, replacing any previous one.
func (v *Vault) SetSecret(ctx context.Context, tenantID string, kind signature.Kind, plaintext []byte, actor string) error {
	if len(plaintext) == 0 {
		return errors.New("secrets: empty secret")
	}
	ct, err := v.cipher.Seal(plaintext, additionalData(tenantID, kind))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	err = v.store.SetSecretCiphertext(ctx, tenantID, kind, ct, actor)
	if errors.Is(err, directory.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
