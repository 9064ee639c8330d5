package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Scopes an API token may carry.
const (
	ScopeRead  = "read"
	ScopeWrite = "write"
	ScopeAll   = "*"
)

// validate performs basic validation on the configuration.
func validate(cfg *Config) error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(cfg.Service.LogLevel)] {
		return fmt.Errorf("service.log_level must be one of: debug, info, warn, error (got %q)", cfg.Service.LogLevel)
	}
	if f := cfg.Service.LogFormat; f != "json" && f != "text" {
		return fmt.Errorf("service.log_format must be json or text (got %q)", f)
	}

	if cfg.Gateway.AckDeadline <= 0 {
		return fmt.Errorf("gateway.ack_deadline must be positive")
	}
	if cfg.Gateway.MaxBodySize <= 0 {
		return fmt.Errorf("gateway.max_body_size must be positive")
	}

	if err := validateStore(cfg); err != nil {
		return err
	}
	if err := validateAPI(cfg.API); err != nil {
		return err
	}

	switch cfg.Vault.Source {
	case VaultSourceEnv:
	case VaultSourceHashicorp:
		if cfg.Vault.Path == "" {
			return fmt.Errorf("vault.path is required for source %q", VaultSourceHashicorp)
		}
	default:
		return fmt.Errorf("vault.source must be env or hashicorp (got %q)", cfg.Vault.Source)
	}

	switch cfg.Queue.Backend {
	case "sql":
		if cfg.Store.Mode == ModeRemote {
			return fmt.Errorf("queue.backend sql needs store.mode local; use nats with a remote store")
		}
	case "nats":
		if cfg.Queue.NATS.URL == "" {
			return fmt.Errorf("queue.nats.url is required for the nats backend")
		}
	default:
		return fmt.Errorf("queue.backend must be sql or nats (got %q)", cfg.Queue.Backend)
	}

	if cfg.Workers.Concurrency <= 0 {
		return fmt.Errorf("workers.concurrency must be positive")
	}
	if cfg.Workers.EffectTimeout <= 0 {
		return fmt.Errorf("workers.effect_timeout must be positive")
	}

	if len(cfg.Retry.Delays) == 0 {
		return fmt.Errorf("retry.delays must list at least one delay")
	}
	for i, d := range cfg.Retry.Delays {
		if d <= 0 {
			return fmt.Errorf("retry.delays[%d] must be positive", i)
		}
		if i > 0 && d < cfg.Retry.Delays[i-1] {
			return fmt.Errorf("retry.delays must not decrease (%s after %s)", d, cfg.Retry.Delays[i-1])
		}
	}
	if _, err := cron.ParseStandard(cfg.Retry.Schedule); err != nil {
		return fmt.Errorf("retry.schedule: %w", err)
	}
	if cfg.Retry.Lease <= cfg.Workers.EffectTimeout {
		return fmt.Errorf("retry.lease (%s) must exceed workers.effect_timeout (%s)", cfg.Retry.Lease, cfg.Workers.EffectTimeout)
	}

	if err := unresolved("forward.signing_secret", cfg.Forward.SigningSecret); err != nil {
		return err
	}
	return unresolved("cache.redis_url", cfg.Cache.RedisURL)
}

func validateStore(cfg *Config) error {
	switch cfg.Store.Mode {
	case ModeLocal:
		switch cfg.Store.Driver {
		case "sqlite":
			if cfg.Store.Path == "" {
				return fmt.Errorf("store.path is required for the sqlite driver")
			}
		case "postgres", "pgx":
			if cfg.Store.DSN == "" {
				return fmt.Errorf("store.dsn is required for the postgres driver")
			}
			if err := unresolved("store.dsn", cfg.Store.DSN); err != nil {
				return err
			}
		default:
			return fmt.Errorf("store.driver must be sqlite or postgres (got %q)", cfg.Store.Driver)
		}
	case ModeRemote:
		if cfg.Contract.Address == "" {
			return fmt.Errorf("contract.address is required when store.mode is remote")
		}
		if err := requireTLS(cfg.Contract.TLS); err != nil {
			return err
		}
	default:
		return fmt.Errorf("store.mode must be local or remote (got %q)", cfg.Store.Mode)
	}
	return nil
}

func requireTLS(t TLSConfig) error {
	if t.CertFile == "" || t.KeyFile == "" || t.CAFile == "" {
		return fmt.Errorf("contract.tls.cert_file, key_file and ca_file are required")
	}
	return nil
}

// RequireContractTLS reports whether the contract TLS material is complete.
// Serving the contract needs it even in local mode.
func (c *Config) RequireContractTLS() error {
	return requireTLS(c.Contract.TLS)
}

func validateAPI(api APIConfig) error {
	if !api.Enabled {
		return nil
	}
	if api.Auth.APIKey == "" && len(api.Auth.Tokens) == 0 {
		return fmt.Errorf("api.auth requires api_key or tokens when the API is enabled")
	}
	if err := unresolved("api.auth.api_key", api.Auth.APIKey); err != nil {
		return err
	}
	for i, tok := range api.Auth.Tokens {
		field := fmt.Sprintf("api.auth.tokens[%d]", i)
		if tok.Token == "" {
			return fmt.Errorf("%s.token is required", field)
		}
		if err := unresolved(field+".token", tok.Token); err != nil {
			return err
		}
		if len(tok.Scopes) == 0 {
			return fmt.Errorf("%s.scopes must be non-empty", field)
		}
		for _, s := range tok.Scopes {
			if s != ScopeRead && s != ScopeWrite && s != ScopeAll {
				return fmt.Errorf("%s.scopes: unknown scope %q", field, s)
			}
		}
	}
	return nil
}

func unresolved(field, value string) error {
	if m := envVarPattern.FindStringSubmatch(value); len(m) > 1 {
		return fmt.Errorf("%s: environment variable ${%s} is not set", field, m[1])
	}
	return nil
}
