package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mattjoyce/hookrelay/internal/config"
	"github.com/mattjoyce/hookrelay/internal/contract"
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/doctor"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/lock"
	"github.com/mattjoyce/hookrelay/internal/queue"
	"github.com/mattjoyce/hookrelay/internal/secrets"
	"github.com/mattjoyce/hookrelay/internal/storage"
)

// stack is the set of long-lived handles a command works through. Fields
// that a role does not need stay nil.
type stack struct {
	cfg   *config.Config
	store contract.Store
	// local is set when this process owns the database.
	local *contract.Local
	dir   *directory.Store
	db    *storage.DB
	queue queue.Queue

	closers []func() error
}

// Close releases resources in reverse order of acquisition.
func (s *stack) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func (s *stack) onClose(fn func() error) {
	s.closers = append(s.closers, fn)
}

// ownsStore reports whether role opens the database itself.
func ownsStore(cfg *config.Config, role string) bool {
	return role == doctor.RoleStore || cfg.Store.Mode == config.ModeLocal
}

// stackOptions selects what openStack connects.
type stackOptions struct {
	role  string
	queue bool
	// serving takes the single-owner lock on a SQLite store. Short-lived
	// admin commands share the file with a running server instead.
	serving bool
}

// openStack connects the store (local or remote), the provider cache and,
// when asked, the work queue.
func openStack(ctx context.Context, cfg *config.Config, opts stackOptions, logger *slog.Logger) (*stack, error) {
	s := &stack{cfg: cfg}
	if err := s.openStore(ctx, opts, logger); err != nil {
		_ = s.Close()
		return nil, err
	}
	if cfg.Cache.RedisURL != "" {
		cache, err := directory.NewCache(cfg.Cache.RedisURL, cfg.Cache.TTL, logger)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.onClose(cache.Close)
		s.store = contract.NewCached(s.store, cache)
	}
	if opts.queue {
		if err := s.openQueue(logger); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *stack) openStore(ctx context.Context, opts stackOptions, logger *slog.Logger) error {
	cfg := s.cfg
	if !ownsStore(cfg, opts.role) {
		tlsCfg, err := contract.ClientTLS(tlsFiles(cfg))
		if err != nil {
			return err
		}
		client, err := contract.Dial(cfg.Contract.Address, tlsCfg)
		if err != nil {
			return err
		}
		s.onClose(client.Close)
		s.store = client
		logger.Info("using remote store", "address", cfg.Contract.Address)
		return nil
	}

	driver, err := storage.ParseDriver(cfg.Store.Driver)
	if err != nil {
		return err
	}
	target := cfg.Store.DSN
	if driver == storage.DriverSQLite {
		target = cfg.Store.Path
		if opts.serving {
			l, err := lock.Acquire(lock.PathFor(cfg.Store.Path))
			if err != nil {
				return fmt.Errorf("store %s: %w", cfg.Store.Path, err)
			}
			s.onClose(l.Release)
		}
	}

	key, err := secrets.LoadMasterKey(ctx, secrets.KeySource{
		Source:        cfg.Vault.Source,
		Env:           cfg.Vault.Env,
		VaultAddress:  cfg.Vault.Address,
		VaultTokenEnv: cfg.Vault.TokenEnv,
		VaultPath:     cfg.Vault.Path,
		VaultField:    cfg.Vault.Field,
	})
	if err != nil {
		return fmt.Errorf("load master key: %w", err)
	}

	db, err := storage.Open(ctx, driver, target)
	if err != nil {
		return err
	}
	s.onClose(db.Close)
	s.db = db

	s.dir = directory.NewStore(db)
	vault, err := secrets.NewVault(s.dir, key)
	if err != nil {
		return err
	}
	evs := eventstore.NewStore(db, eventstore.WithRetryCeiling(len(cfg.Retry.Delays)))
	s.local = contract.NewLocal(s.dir, vault, evs)
	s.store = s.local
	logger.Info("store opened", "driver", driver)
	return nil
}

func (s *stack) openQueue(logger *slog.Logger) error {
	cfg := s.cfg
	switch queue.Backend(cfg.Queue.Backend) {
	case queue.BackendSQL:
		if s.db == nil {
			return errors.New("queue.backend sql needs a local store")
		}
		s.queue = queue.NewSQL(s.db, cfg.Queue.Visibility)
	case queue.BackendNATS:
		js, err := queue.DialJetStream(queue.JetStreamConfig{
			URL:          cfg.Queue.NATS.URL,
			Stream:       cfg.Queue.NATS.Stream,
			Subject:      cfg.Queue.NATS.Subject,
			Durable:      cfg.Queue.NATS.Durable,
			AckWait:      cfg.Queue.NATS.AckWait,
			DedupeWindow: cfg.Queue.NATS.DedupeWindow,
		}, logger)
		if err != nil {
			return err
		}
		s.onClose(func() error { js.Close(); return nil })
		s.queue = js
	default:
		return fmt.Errorf("unknown queue backend %q", cfg.Queue.Backend)
	}
	return nil
}

func tlsFiles(cfg *config.Config) contract.TLSFiles {
	return contract.TLSFiles{
		CertFile:   cfg.Contract.TLS.CertFile,
		KeyFile:    cfg.Contract.TLS.KeyFile,
		CAFile:     cfg.Contract.TLS.CAFile,
		ServerName: cfg.Contract.TLS.ServerName,
	}
}
