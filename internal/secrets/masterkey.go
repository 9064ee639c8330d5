package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/vault/api"
)

// KeySource says where the master key comes from.
type KeySource struct {
	// Source is "env" or "hashicorp".
	Source string
	// Env names the variable holding the base64 key when Source is "env".
	Env string

	VaultAddress  string
	VaultTokenEnv string
	// VaultPath is a KV v2 read path, e.g. "secret/data/hookrelay".
	VaultPath  string
	VaultField string
}

// LoadMasterKey fetches and decodes the master key. It is called once at
// startup and the result handed to NewVault.
func LoadMasterKey(ctx context.Context, src KeySource) ([]byte, error) {
	switch strings.ToLower(src.Source) {
	case "", "env":
		name := src.Env
		if name == "" {
			name = "HOOKRELAY_MASTER_KEY"
		}
		v := os.Getenv(name)
		if v == "" {
			return nil, fmt.Errorf("master key: environment variable %s is not set", name)
		}
		return DecodeKey(v)
	case "hashicorp":
		return loadFromVault(ctx, src)
	default:
		return nil, fmt.Errorf("master key: unknown source %q", src.Source)
	}
}

func loadFromVault(ctx context.Context, src KeySource) ([]byte, error) {
	cfg := api.DefaultConfig()
	if src.VaultAddress != "" {
		cfg.Address = src.VaultAddress
	}
	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault client: %w", err)
	}
	if src.VaultTokenEnv != "" {
		client.SetToken(os.Getenv(src.VaultTokenEnv))
	}

	secret, err := client.Logical().ReadWithContext(ctx, src.VaultPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.VaultPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("no data at %s", src.VaultPath)
	}
	// KV v2 nests the fields under "data".
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected data format at %s", src.VaultPath)
	}
	field := src.VaultField
	if field == "" {
		field = "master_key"
	}
	encoded, ok := data[field].(string)
	if !ok || encoded == "" {
		return nil, errors.New("master key field missing from vault secret")
	}
	return DecodeKey(encoded)
}
