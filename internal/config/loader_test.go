package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
		checkFn func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty file takes defaults",
			yaml: ``,
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.Gateway.AckDeadline != 3*time.Second {
					t.Errorf("ack_deadline = %v, want 3s", cfg.Gateway.AckDeadline)
				}
				if len(cfg.Retry.Delays) != 3 || cfg.Retry.Delays[2] != 15*time.Minute {
					t.Errorf("retry delays = %v", cfg.Retry.Delays)
				}
				if cfg.Store.Mode != ModeLocal || cfg.Queue.Backend != "sql" {
					t.Errorf("store/queue defaults not applied: %+v %+v", cfg.Store, cfg.Queue)
				}
			},
		},
		{
			name: "overrides and durations",
			yaml: `
service:
  log_level: debug
  log_format: text
gateway:
  listen: ":9000"
  ack_deadline: 2s
workers:
  concurrency: 8
  effect_timeout: 10s
retry:
  delays: [30s, 2m]
  schedule: "@every 5s"
`,
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.Gateway.Listen != ":9000" || cfg.Gateway.AckDeadline != 2*time.Second {
					t.Errorf("gateway not parsed: %+v", cfg.Gateway)
				}
				if cfg.Gateway.MaxBodySize != 1048576 {
					t.Error("untouched gateway fields should keep defaults")
				}
				if cfg.Workers.Concurrency != 8 {
					t.Error("workers.concurrency not parsed")
				}
				if len(cfg.Retry.Delays) != 2 || cfg.Retry.Delays[0] != 30*time.Second {
					t.Errorf("retry.delays = %v", cfg.Retry.Delays)
				}
			},
		},
		{
			name: "env interpolation",
			yaml: `
api:
  enabled: true
  auth:
    api_key: ${HOOKRELAY_TEST_API_KEY}
forward:
  signing_secret: ${HOOKRELAY_TEST_FORWARD}
`,
			env: map[string]string{"HOOKRELAY_TEST_API_KEY": "k-123", "HOOKRELAY_TEST_FORWARD": "fwd"},
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.API.Auth.APIKey != "k-123" {
					t.Errorf("api_key = %q", cfg.API.Auth.APIKey)
				}
				if cfg.Forward.SigningSecret != "fwd" {
					t.Errorf("signing_secret = %q", cfg.Forward.SigningSecret)
				}
			},
		},
		{
			name:    "unset env var",
			yaml:    "api:\n  enabled: true\n  auth:\n    api_key: ${HOOKRELAY_TEST_MISSING}\n",
			wantErr: "HOOKRELAY_TEST_MISSING",
		},
		{
			name:    "unknown field",
			yaml:    "gateway:\n  lisen: \":80\"\n",
			wantErr: "lisen",
		},
		{
			name:    "remote store needs address",
			yaml:    "store:\n  mode: remote\nqueue:\n  backend: nats\n",
			wantErr: "contract.address",
		},
		{
			name: "remote store rejects sql queue",
			yaml: `
store:
  mode: remote
contract:
  address: store:9443
  tls: {cert_file: c.pem, key_file: k.pem, ca_file: ca.pem}
`,
			wantErr: "queue.backend sql",
		},
		{
			name:    "postgres needs dsn",
			yaml:    "store:\n  driver: postgres\n",
			wantErr: "store.dsn",
		},
		{
			name:    "decreasing delays",
			yaml:    "retry:\n  delays: [5m, 1m]\n",
			wantErr: "must not decrease",
		},
		{
			name:    "bad schedule",
			yaml:    "retry:\n  schedule: \"every tuesday\"\n",
			wantErr: "retry.schedule",
		},
		{
			name:    "lease shorter than effect timeout",
			yaml:    "retry:\n  lease: 10s\nworkers:\n  effect_timeout: 30s\n",
			wantErr: "retry.lease",
		},
		{
			name:    "bad token scope",
			yaml:    "api:\n  enabled: true\n  auth:\n    tokens:\n      - token: abc\n        scopes: [admin]\n",
			wantErr: "unknown scope",
		},
		{
			name:    "hashicorp needs path",
			yaml:    "vault:\n  source: hashicorp\n",
			wantErr: "vault.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(writeConfig(t, tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if tt.checkFn != nil {
				tt.checkFn(t, cfg)
			}
		})
	}
}

func TestLoadDirectoryUsesConfigYAML(t *testing.T) {
	path := writeConfig(t, "service:\n  name: relay-a\n")
	cfg, err := Load(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Service.Name != "relay-a" || cfg.SourcePath != path {
		t.Errorf("got name %q from %q", cfg.Service.Name, cfg.SourcePath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGetPathRedactsSecrets(t *testing.T) {
	cfg := Defaults()
	cfg.API.Auth.APIKey = "super-secret"
	cfg.Store.DSN = "postgres://u:p@db/hookrelay"

	v, err := cfg.GetPath("api.auth.api_key")
	if err != nil {
		t.Fatalf("GetPath() error = %v", err)
	}
	if v != redacted {
		t.Errorf("api_key = %v, want redacted", v)
	}
	if v, _ := cfg.GetPath("store.dsn"); v != redacted {
		t.Errorf("dsn = %v, want redacted", v)
	}
	if v, _ := cfg.GetPath("gateway.listen"); v != ":8080" {
		t.Errorf("gateway.listen = %v", v)
	}
	if _, err := cfg.GetPath("gateway.nope"); err == nil {
		t.Error("expected error for unknown key")
	}
}
