package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/mattjoyce/hookrelay/internal/api"
	"github.com/mattjoyce/hookrelay/internal/auth"
	"github.com/mattjoyce/hookrelay/internal/config"
	"github.com/mattjoyce/hookrelay/internal/contract"
	"github.com/mattjoyce/hookrelay/internal/doctor"
	"github.com/mattjoyce/hookrelay/internal/effect"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/gateway"
	"github.com/mattjoyce/hookrelay/internal/log"
	"github.com/mattjoyce/hookrelay/internal/metrics"
	"github.com/mattjoyce/hookrelay/internal/retry"
	"github.com/mattjoyce/hookrelay/internal/worker"
)

const systemHelp = `Usage: hookrelay system <action>
Actions: start`

func runSystemNoun(args []string) int {
	return dispatch("system", args, map[string]func([]string) int{
		"start": runStart,
	}, systemHelp)
}

// roles decides which components a process runs.
type roles struct {
	gateway  bool
	workers  bool
	contract bool
}

func rolesFor(cfg *config.Config, role string) roles {
	switch role {
	case doctor.RoleIngest:
		return roles{gateway: true}
	case doctor.RoleStore:
		return roles{workers: true, contract: true}
	default:
		// a single process serves the contract only when it has the material
		return roles{
			gateway:  true,
			workers:  true,
			contract: cfg.Store.Mode == config.ModeLocal && cfg.RequireContractTLS() == nil,
		}
	}
}

func runStart(args []string) int {
	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	configPath := configFlag(fs)
	role := fs.String("role", doctor.RoleAll, "Process role: all, ingest or store")
	if hasHelpFlag(args) {
		fmt.Println("Usage: hookrelay system start [--config PATH] [--role all|ingest|store]")
		fmt.Println("Run the service in the foreground until SIGINT or SIGTERM.")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Service.LogLevel, cfg.Service.LogFormat)
	logger := log.WithComponent("main")

	check := doctor.New(cfg, *role).Validate()
	if !check.Valid {
		fmt.Fprint(os.Stderr, doctor.FormatHuman(check))
		return 1
	}
	for _, w := range check.Warnings {
		logger.Warn("config warning", "category", w.Category, "field", w.Field, "message", w.Message)
	}

	logger.Info("hookrelay starting", "version", version, "role", *role, "config", cfg.SourcePath)
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, *role); err != nil {
		logger.Error("hookrelay stopped with error", "error", err)
		return 1
	}
	logger.Info("hookrelay stopped")
	return 0
}

// serve wires the components for role and blocks until ctx is done or one
// of them fails.
func serve(ctx context.Context, cfg *config.Config, role string) error {
	logger := log.WithComponent("main")
	want := rolesFor(cfg, role)

	st, err := openStack(ctx, cfg, stackOptions{role: role, queue: true, serving: true}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("shutdown cleanup failed", "error", err)
		}
	}()

	hub := events.NewHub(256)
	var runners []func(context.Context) error

	if want.gateway {
		gw := gateway.New(gateway.Config{
			Listen:      cfg.Gateway.Listen,
			AckDeadline: cfg.Gateway.AckDeadline,
			MaxBodySize: cfg.Gateway.MaxBodySize,
			RetryAfter:  cfg.Gateway.RetryAfter,
		}, st.store, st.queue, hub, log.WithComponent("gateway"))
		runners = append(runners, gateway.NewServer(gw).Start)
	}

	if want.workers {
		sched := retry.New(retry.Config{
			Delays:   cfg.Retry.Delays,
			Schedule: cfg.Retry.Schedule,
			Lease:    cfg.Retry.Lease,
			Stranded: cfg.Retry.Stranded,
			Batch:    cfg.Retry.Batch,
		}, st.store, st.queue, hub, log.WithComponent("retry"))
		runners = append(runners, func(ctx context.Context) error {
			if err := sched.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			sched.Stop()
			return nil
		})

		eff := effect.Router{
			Forward: effect.NewForwarder([]byte(cfg.Forward.SigningSecret), cfg.Forward.Timeout, cfg.Forward.UserAgent),
			Default: effect.LogOnly{Logger: log.WithComponent("effect")},
		}
		pool := worker.New(worker.Config{
			Concurrency:   cfg.Workers.Concurrency,
			Poll:          cfg.Workers.Poll,
			EffectTimeout: cfg.Workers.EffectTimeout,
		}, st.store, st.queue, eff, sched, hub, log.WithComponent("worker"))
		runners = append(runners, pool.Start)

		if cfg.API.Enabled {
			var depth api.DepthReporter
			if d, ok := st.queue.(api.DepthReporter); ok {
				depth = d
			}
			srv := api.New(api.Config{
				Listen: cfg.API.Listen,
				APIKey: cfg.API.Auth.APIKey,
				Tokens: apiTokens(cfg),
			}, st.store, sched, depth, hub, log.WithComponent("api"))
			runners = append(runners, srv.Start)
		}
	}

	if want.contract {
		if st.local == nil {
			return errors.New("serving the contract needs a local store")
		}
		tlsCfg, err := contract.ServerTLS(tlsFiles(cfg))
		if err != nil {
			return err
		}
		srv, err := contract.NewServer(st.local, tlsCfg, log.WithComponent("contract"))
		if err != nil {
			return err
		}
		runners = append(runners, func(ctx context.Context) error {
			return srv.Start(ctx, cfg.Contract.Listen)
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, run := range runners {
		g.Go(func() error { return run(gctx) })
	}
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func apiTokens(cfg *config.Config) []auth.TokenConfig {
	tokens := make([]auth.TokenConfig, 0, len(cfg.API.Auth.Tokens))
	for _, t := range cfg.API.Auth.Tokens {
		tokens = append(tokens, auth.TokenConfig{
			Name:   t.Name,
			Token:  t.Token,
			Scopes: t.Scopes,
		})
	}
	return tokens
}
