package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

const ciphertextPrefix = "enc:v1:"

// KeySize is the master key length (AES-256).
const KeySize = 32

var (
	ErrKeyInvalid    = errors.New("secrets: master key must be 32 bytes")
	ErrDecryptFailed = errors.New("secrets: decrypt failed")
)

// Cipher seals provider signing secrets with AES-256-GCM. The additional
// data passed to Seal and Open binds a ciphertext to its owner.
type Cipher struct {
	aead cipher.AEAD
	rand io.Reader
}

// NewCipher builds a Cipher from a raw 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrKeyInvalid
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyInvalid, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyInvalid, err)
	}
	return &Cipher{aead: aead, rand: rand.Reader}, nil
}

// DecodeKey parses a base64 master key, padded or not.
func DecodeKey(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		if key, err = base64.RawStdEncoding.DecodeString(encoded); err != nil {
			return nil, fmt.Errorf("%w: invalid base64", ErrKeyInvalid)
		}
	}
	if len(key) != KeySize {
		return nil, ErrKeyInvalid
	}
	return key, nil
}

// Seal encrypts plaintext into the versioned "enc:v1:" envelope.
func (c *Cipher) Seal(plaintext, aad []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, plaintext, aad)
	return ciphertextPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Tampering, a wrong key, or mismatched aad all
// surface as ErrDecryptFailed.
func (c *Cipher) Open(value string, aad []byte) ([]byte, error) {
	encoded, ok := strings.CutPrefix(strings.TrimSpace(value), ciphertextPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: unknown envelope", ErrDecryptFailed)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrDecryptFailed, err)
	}
	ns := c.aead.NonceSize()
	if len(raw) < ns {
		return nil, fmt.Errorf("%w: payload too short", ErrDecryptFailed)
	}
	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	return plain, nil
}
