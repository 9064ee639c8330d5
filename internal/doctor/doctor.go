// Package doctor checks a loaded configuration against the host it is
// about to run on: key material, certificates, store location and
// credentials that config validation cannot see.
package doctor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattjoyce/hookrelay/internal/config"
	"github.com/mattjoyce/hookrelay/internal/contract"
	"github.com/mattjoyce/hookrelay/internal/secrets"
	"github.com/mattjoyce/hookrelay/internal/storage"
)

// Roles a process can run as.
const (
	RoleAll    = "all"
	RoleIngest = "ingest"
	RoleStore  = "store"
)

// minAPIKeyLength is the shortest admin key accepted without a warning.
const minAPIKeyLength = 24

// Result holds the outcome of a validation run.
type Result struct {
	Valid    bool    `json:"valid"`
	Role     string  `json:"role"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// Issue describes a single validation error or warning.
type Issue struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
}

// Doctor validates a configuration for one process role.
type Doctor struct {
	cfg    *config.Config
	role   string
	getenv func(string) string
}

// New creates a Doctor. An empty role means RoleAll.
func New(cfg *config.Config, role string) *Doctor {
	if role == "" {
		role = RoleAll
	}
	return &Doctor{cfg: cfg, role: role, getenv: os.Getenv}
}

// Validate runs all checks and returns a result.
func (d *Doctor) Validate() *Result {
	r := &Result{Valid: true, Role: d.role}

	switch d.role {
	case RoleAll, RoleIngest, RoleStore:
	default:
		d.addError(r, "role", "", fmt.Sprintf("unknown role %q (want all, ingest or store)", d.role))
		r.Valid = false
		return r
	}

	if d.ownsStore() {
		d.checkStore(r)
		d.checkMasterKey(r)
	}
	d.checkContractTLS(r)
	d.checkAPI(r)
	d.warnForwarding(r)
	d.warnCache(r)
	d.warnUnlocked(r)

	r.Valid = len(r.Errors) == 0
	return r
}

// ownsStore reports whether this process opens the database and vault.
func (d *Doctor) ownsStore() bool {
	return d.role == RoleStore || d.cfg.Store.Mode == config.ModeLocal
}

func (d *Doctor) addError(r *Result, category, field, msg string) {
	r.Errors = append(r.Errors, Issue{Category: category, Field: field, Message: msg})
}

func (d *Doctor) addWarning(r *Result, category, field, msg string) {
	r.Warnings = append(r.Warnings, Issue{Category: category, Field: field, Message: msg})
}

func (d *Doctor) checkStore(r *Result) {
	if d.cfg.Store.Driver != "sqlite" {
		return
	}
	path := d.cfg.Store.Path
	if err := storage.CheckLocalFilesystem(path); err != nil {
		d.addError(r, "store", "store.path", err.Error())
		return
	}
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		d.addError(r, "store", "store.path", fmt.Sprintf("%s is not a directory", dir))
	}
}

func (d *Doctor) checkMasterKey(r *Result) {
	v := d.cfg.Vault
	switch v.Source {
	case config.VaultSourceEnv:
		raw := d.getenv(v.Env)
		if raw == "" {
			d.addError(r, "vault", "vault.env", fmt.Sprintf("environment variable %s is not set", v.Env))
			return
		}
		if _, err := secrets.DecodeKey(raw); err != nil {
			d.addError(r, "vault", "vault.env", fmt.Sprintf("%s: %v", v.Env, err))
		}
	case config.VaultSourceHashicorp:
		tokenEnv := v.TokenEnv
		if tokenEnv == "" {
			tokenEnv = "VAULT_TOKEN"
		}
		if d.getenv(tokenEnv) == "" {
			d.addWarning(r, "vault", "vault.token_env", fmt.Sprintf("%s is not set; the Vault client falls back to its own defaults", tokenEnv))
		}
	}
}

func (d *Doctor) checkContractTLS(r *Result) {
	serve := d.role == RoleStore
	dial := d.role == RoleIngest || (d.role == RoleAll && d.cfg.Store.Mode == config.ModeRemote)
	if !serve && !dial {
		return
	}
	files := contract.TLSFiles{
		CertFile:   d.cfg.Contract.TLS.CertFile,
		KeyFile:    d.cfg.Contract.TLS.KeyFile,
		CAFile:     d.cfg.Contract.TLS.CAFile,
		ServerName: d.cfg.Contract.TLS.ServerName,
	}
	if serve {
		if _, err := contract.ServerTLS(files); err != nil {
			d.addError(r, "contract", "contract.tls", err.Error())
		}
	}
	if dial {
		if d.cfg.Contract.Address == "" {
			d.addError(r, "contract", "contract.address", "contract.address is required to reach the store tier")
		}
		if _, err := contract.ClientTLS(files); err != nil {
			d.addError(r, "contract", "contract.tls", err.Error())
		}
	}
}

func (d *Doctor) checkAPI(r *Result) {
	api := d.cfg.API
	if !api.Enabled || d.role == RoleIngest {
		return
	}
	if api.Auth.APIKey != "" && len(api.Auth.APIKey) < minAPIKeyLength {
		d.addWarning(r, "api", "api.auth.api_key",
			fmt.Sprintf("admin key is shorter than %d characters", minAPIKeyLength))
	}
	if api.Auth.APIKey != "" && len(api.Auth.Tokens) > 0 {
		d.addWarning(r, "api", "api.auth",
			"both api_key and tokens configured; api_key grants every scope")
	}
	if host, _, err := net.SplitHostPort(api.Listen); err == nil && !isLoopback(host) {
		d.addWarning(r, "api", "api.listen",
			fmt.Sprintf("operator API listens on %s; keep it off the public network", api.Listen))
	}
}

func (d *Doctor) warnForwarding(r *Result) {
	if d.role == RoleIngest {
		return
	}
	if d.cfg.Forward.SigningSecret == "" {
		d.addWarning(r, "forward", "forward.signing_secret",
			"forwarded deliveries will carry no X-Hookrelay-Signature")
	}
}

func (d *Doctor) warnCache(r *Result) {
	if d.cfg.Cache.RedisURL == "" && d.role == RoleIngest {
		d.addWarning(r, "cache", "cache.redis_url",
			"no provider cache; every webhook costs a store round trip for the lookup")
	}
}

func (d *Doctor) warnUnlocked(r *Result) {
	if d.cfg.SourcePath == "" {
		return
	}
	if err := config.VerifyChecksum(d.cfg.SourcePath); errors.Is(err, config.ErrNoChecksums) {
		d.addWarning(r, "integrity", "",
			"config has no checksum manifest; run 'hookrelay config hash' to lock it")
	}
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// FormatHuman returns a human-readable validation report.
func FormatHuman(r *Result) string {
	var b strings.Builder

	if r.Valid && len(r.Warnings) == 0 {
		fmt.Fprintf(&b, "Configuration valid for role %s.\n", r.Role)
		return b.String()
	}

	if r.Valid && len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "Configuration valid for role %s (%d warning(s))\n", r.Role, len(r.Warnings))
	}

	if !r.Valid {
		fmt.Fprintf(&b, "Configuration invalid for role %s (%d error(s), %d warning(s))\n", r.Role, len(r.Errors), len(r.Warnings))
	}

	for _, e := range r.Errors {
		if e.Field != "" {
			fmt.Fprintf(&b, "  ERROR [%s] %s: %s\n", e.Category, e.Field, e.Message)
		} else {
			fmt.Fprintf(&b, "  ERROR [%s] %s\n", e.Category, e.Message)
		}
	}
	for _, w := range r.Warnings {
		if w.Field != "" {
			fmt.Fprintf(&b, "  WARN  [%s] %s: %s\n", w.Category, w.Field, w.Message)
		} else {
			fmt.Fprintf(&b, "  WARN  [%s] %s\n", w.Category, w.Message)
		}
	}

	return b.String()
}

// FormatJSON returns the result as indented JSON.
func FormatJSON(r *Result) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
