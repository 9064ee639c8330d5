package config

import "time"

// Config represents the complete hookrelay configuration.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Gateway  GatewayConfig  `yaml:"gateway"`
	API      APIConfig      `yaml:"api"`
	Store    StoreConfig    `yaml:"store"`
	Contract ContractConfig `yaml:"contract"`
	Vault    VaultConfig    `yaml:"vault"`
	Queue    QueueConfig    `yaml:"queue"`
	Workers  WorkersConfig  `yaml:"workers"`
	Retry    RetryConfig    `yaml:"retry"`
	Cache    CacheConfig    `yaml:"cache"`
	Forward  ForwardConfig  `yaml:"forward"`

	// SourcePath is the absolute path the config was loaded from.
	SourcePath string `yaml:"-"`
}

// ServiceConfig defines core service settings.
type ServiceConfig struct {
	Name      string `yaml:"name"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// GatewayConfig defines the public webhook listener.
type GatewayConfig struct {
	Listen      string        `yaml:"listen"`
	AckDeadline time.Duration `yaml:"ack_deadline"`
	MaxBodySize int64         `yaml:"max_body_size"`
	RetryAfter  int           `yaml:"retry_after"`
}

// APIConfig defines the operator HTTP API.
type APIConfig struct {
	Enabled bool          `yaml:"enabled"`
	Listen  string        `yaml:"listen"`
	Auth    APIAuthConfig `yaml:"auth"`
}

// APIAuthConfig defines API authentication settings.
type APIAuthConfig struct {
	// APIKey is a single bearer token with every scope.
	APIKey string     `yaml:"api_key"`
	Tokens []APIToken `yaml:"tokens,omitempty"`
}

// APIToken defines a bearer token and its scopes.
type APIToken struct {
	Name   string   `yaml:"name"`
	Token  string   `yaml:"token"`
	Scopes []string `yaml:"scopes"`
}

// StoreConfig selects where tenant records and the event ledger live.
// In remote mode the process reaches them through the contract client.
type StoreConfig struct {
	Mode   string `yaml:"mode"`
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

// ContractConfig covers both ends of the internal service contract.
type ContractConfig struct {
	// Listen is where a store-role process serves the contract.
	Listen string `yaml:"listen"`
	// Address is where an ingest-role process dials it.
	Address string    `yaml:"address"`
	TLS     TLSConfig `yaml:"tls"`
}

// TLSConfig holds PEM file paths for mutual TLS.
type TLSConfig struct {
	CertFile   string `yaml:"cert_file"`
	KeyFile    string `yaml:"key_file"`
	CAFile     string `yaml:"ca_file"`
	ServerName string `yaml:"server_name"`
}

// VaultConfig locates the master key that seals provider secrets.
type VaultConfig struct {
	Source   string `yaml:"source"`
	Env      string `yaml:"env"`
	Address  string `yaml:"address"`
	TokenEnv string `yaml:"token_env"`
	Path     string `yaml:"path"`
	Field    string `yaml:"field"`
}

// QueueConfig selects the durable work queue.
type QueueConfig struct {
	Backend    string        `yaml:"backend"`
	Visibility time.Duration `yaml:"visibility"`
	NATS       NATSConfig    `yaml:"nats"`
}

// NATSConfig configures the JetStream backend.
type NATSConfig struct {
	URL          string        `yaml:"url"`
	Stream       string        `yaml:"stream"`
	Subject      string        `yaml:"subject"`
	Durable      string        `yaml:"durable"`
	AckWait      time.Duration `yaml:"ack_wait"`
	DedupeWindow time.Duration `yaml:"dedupe_window"`
}

// WorkersConfig sizes the processing pool.
type WorkersConfig struct {
	Concurrency   int           `yaml:"concurrency"`
	Poll          time.Duration `yaml:"poll"`
	EffectTimeout time.Duration `yaml:"effect_timeout"`
}

// RetryConfig defines the backoff ladder and the recovery sweep.
type RetryConfig struct {
	Delays   []time.Duration `yaml:"delays"`
	Schedule string          `yaml:"schedule"`
	Lease    time.Duration   `yaml:"lease"`
	Stranded time.Duration   `yaml:"stranded"`
	Batch    int             `yaml:"batch"`
}

// CacheConfig enables the Redis provider cache when RedisURL is set.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url"`
	TTL      time.Duration `yaml:"ttl"`
}

// ForwardConfig configures the forwarding effect.
type ForwardConfig struct {
	SigningSecret string        `yaml:"signing_secret"`
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
}

// Store modes and vault sources.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"

	VaultSourceEnv       = "env"
	VaultSourceHashicorp = "hashicorp"
)

// Defaults returns a configuration with all default values applied.
func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:      "hookrelay",
			LogLevel:  "info",
			LogFormat: "json",
		},
		Gateway: GatewayConfig{
			Listen:      ":8080",
			AckDeadline: 3 * time.Second,
			MaxBodySize: 1048576,
			RetryAfter:  60,
		},
		API: APIConfig{
			Enabled: false,
			Listen:  "127.0.0.1:8081",
		},
		Store: StoreConfig{
			Mode:   ModeLocal,
			Driver: "sqlite",
			Path:   "./data/hookrelay.db",
		},
		Contract: ContractConfig{
			Listen: ":9443",
		},
		Vault: VaultConfig{
			Source: VaultSourceEnv,
			Env:    "HOOKRELAY_MASTER_KEY",
			Field:  "master_key",
		},
		Queue: QueueConfig{
			Backend:    "sql",
			Visibility: 2 * time.Minute,
			NATS: NATSConfig{
				URL:          "nats://127.0.0.1:4222",
				Stream:       "HOOKRELAY",
				Subject:      "hookrelay.work",
				Durable:      "hookrelay-workers",
				AckWait:      2 * time.Minute,
				DedupeWindow: 2 * time.Minute,
			},
		},
		Workers: WorkersConfig{
			Concurrency:   4,
			Poll:          time.Second,
			EffectTimeout: 30 * time.Second,
		},
		Retry: RetryConfig{
			Delays:   []time.Duration{time.Minute, 5 * time.Minute, 15 * time.Minute},
			Schedule: "@every 10s",
			Lease:    5 * time.Minute,
			Stranded: time.Minute,
			Batch:    100,
		},
		Cache: CacheConfig{
			TTL: 30 * time.Second,
		},
		Forward: ForwardConfig{
			Timeout:   30 * time.Second,
			UserAgent: "hookrelay",
		},
	}
}
