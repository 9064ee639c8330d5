package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mattjoyce/hookrelay/internal/config"
	"github.com/mattjoyce/hookrelay/internal/doctor"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/log"
	"github.com/mattjoyce/hookrelay/internal/retry"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

const (
	tenantHelp = `Usage: hookrelay tenant <action>
Actions: add <name> <slug> [--quota N]`
	providerHelp = `Usage: hookrelay provider <action> <tenant-slug> <kind>
Actions: add [--forward-url URL], rotate-secret [--from-env VAR], activate, deactivate
Kinds: stripe, github, shopify, generic`
	eventHelp = `Usage: hookrelay event <action>
Actions: list <tenant-slug> [--status S] [--limit N], show <event-id>, retry <event-id>`
)

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

func runTenantNoun(args []string) int {
	return dispatch("tenant", args, map[string]func([]string) int{
		"add": runTenantAdd,
	}, tenantHelp)
}

func runProviderNoun(args []string) int {
	return dispatch("provider", args, map[string]func([]string) int{
		"add":           runProviderAdd,
		"rotate-secret": runProviderRotate,
		"activate":      func(a []string) int { return runProviderSetActive(a, true) },
		"deactivate":    func(a []string) int { return runProviderSetActive(a, false) },
	}, providerHelp)
}

func runEventNoun(args []string) int {
	return dispatch("event", args, map[string]func([]string) int{
		"list":  runEventList,
		"show":  runEventShow,
		"retry": runEventRetry,
	}, eventHelp)
}

// cliActor names the operator on audit entries.
func cliActor() string {
	if u := os.Getenv("USER"); u != "" {
		return "cli:" + u
	}
	return "cli"
}

// withStore loads the config and opens the local store for an admin
// command. Admin commands always run against the store tier.
func withStore(configPath string, needQueue bool, fn func(ctx context.Context, st *stack, logger *slog.Logger) error) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	// stdout carries command output
	logger := log.New(os.Stderr, "warn", cfg.Service.LogFormat).With(slog.String("component", "cli"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := openStack(ctx, cfg, stackOptions{role: doctor.RoleStore, queue: needQueue}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		return 1
	}
	defer st.Close()

	if err := fn(ctx, st, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runTenantAdd(args []string) int {
	fs := flag.NewFlagSet("tenant add", flag.ContinueOnError)
	configPath := configFlag(fs)
	quota := fs.Int64("quota", 0, "Monthly event quota (0 = unlimited)")
	pos, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if len(pos) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: hookrelay tenant add <name> <slug> [--quota N]")
		return 1
	}

	return withStore(*configPath, false, func(ctx context.Context, st *stack, _ *slog.Logger) error {
		t, err := st.dir.CreateTenant(ctx, pos[0], pos[1], *quota)
		if err != nil {
			return err
		}
		return printJSON(t)
	})
}

// providerArgs parses "<tenant-slug> <kind>".
func providerArgs(pos []string) (string, signature.Kind, error) {
	if len(pos) != 2 {
		return "", "", errors.New("expected <tenant-slug> <kind>")
	}
	kind, err := signature.ParseKind(pos[1])
	if err != nil {
		return "", "", err
	}
	return pos[0], kind, nil
}

func runProviderAdd(args []string) int {
	fs := flag.NewFlagSet("provider add", flag.ContinueOnError)
	configPath := configFlag(fs)
	forwardURL := fs.String("forward-url", "", "Forward admitted events to this URL")
	pos, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	slug, kind, err := providerArgs(pos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, providerHelp)
		return 1
	}

	return withStore(*configPath, false, func(ctx context.Context, st *stack, _ *slog.Logger) error {
		t, err := st.dir.TenantBySlug(ctx, slug)
		if err != nil {
			return err
		}
		p, err := st.dir.CreateProvider(ctx, t.ID, kind, *forwardURL)
		if err != nil {
			return err
		}
		if !p.HasSecret {
			fmt.Fprintf(os.Stderr, "Provider created without a signing secret; run: hookrelay provider rotate-secret %s %s\n", slug, kind)
		}
		return printJSON(p)
	})
}

// readSecret takes the secret from the named variable, or the first line
// of stdin. Secrets never travel on the command line.
func readSecret(fromEnv string) ([]byte, error) {
	if fromEnv != "" {
		v := os.Getenv(fromEnv)
		if v == "" {
			return nil, fmt.Errorf("environment variable %s is empty", fromEnv)
		}
		return []byte(v), nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read secret: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, errors.New("empty secret on stdin")
	}
	return []byte(line), nil
}

func runProviderRotate(args []string) int {
	fs := flag.NewFlagSet("provider rotate-secret", flag.ContinueOnError)
	configPath := configFlag(fs)
	fromEnv := fs.String("from-env", "", "Read the new secret from this environment variable")
	pos, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	slug, kind, err := providerArgs(pos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, providerHelp)
		return 1
	}
	secret, err := readSecret(*fromEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return withStore(*configPath, false, func(ctx context.Context, st *stack, _ *slog.Logger) error {
		p, err := st.store.GetProvider(ctx, slug, kind)
		if err != nil {
			return err
		}
		p, err = st.store.RotateProviderSecret(ctx, p.TenantID, kind, secret, cliActor())
		if err != nil {
			return err
		}
		return printJSON(p)
	})
}

func runProviderSetActive(args []string, active bool) int {
	fs := flag.NewFlagSet("provider", flag.ContinueOnError)
	configPath := configFlag(fs)
	pos, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	slug, kind, err := providerArgs(pos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, providerHelp)
		return 1
	}

	return withStore(*configPath, false, func(ctx context.Context, st *stack, _ *slog.Logger) error {
		p, err := st.store.GetProvider(ctx, slug, kind)
		if err != nil {
			return err
		}
		p, err = st.store.SetProviderActive(ctx, p.TenantID, kind, active, cliActor())
		if err != nil {
			return err
		}
		return printJSON(p)
	})
}

func runEventList(args []string) int {
	fs := flag.NewFlagSet("event list", flag.ContinueOnError)
	configPath := configFlag(fs)
	status := fs.String("status", "", "Only events in this status")
	limit := fs.Int("limit", 50, "Maximum events to list")
	jsonOut := fs.Bool("json", false, "Output JSON")
	pos, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if len(pos) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: hookrelay event list <tenant-slug> [--status S] [--limit N] [--json]")
		return 1
	}
	var st eventstore.Status
	if *status != "" {
		if st, err = eventstore.ParseStatus(*status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	return withStore(*configPath, false, func(ctx context.Context, s *stack, _ *slog.Logger) error {
		t, err := s.dir.TenantBySlug(ctx, pos[0])
		if err != nil {
			return err
		}
		list, err := s.store.ListWebhookEvents(ctx, eventstore.Filter{TenantID: t.ID, Status: st, Limit: *limit})
		if err != nil {
			return err
		}
		if *jsonOut {
			for i := range list {
				list[i].Payload = nil
			}
			return printJSON(list)
		}
		return writeEventTable(os.Stdout, list)
	})
}

func writeEventTable(w io.Writer, list []eventstore.Event) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPROVIDER\tEXTERNAL ID\tSTATUS\tRETRIES\tRECEIVED")
	for _, ev := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			ev.ID, ev.ProviderKind, ev.ExternalEventID, ev.Status, ev.RetryCount,
			ev.ReceivedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}

// eventView renders the payload as text rather than base64.
type eventView struct {
	eventstore.Event
	Payload  string                    `json:"payload"`
	Attempts []eventstore.RetryAttempt `json:"attempts"`
}

func runEventShow(args []string) int {
	fs := flag.NewFlagSet("event show", flag.ContinueOnError)
	configPath := configFlag(fs)
	pos, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if len(pos) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: hookrelay event show <event-id>")
		return 1
	}

	return withStore(*configPath, false, func(ctx context.Context, st *stack, _ *slog.Logger) error {
		ev, err := st.store.GetWebhookEvent(ctx, pos[0])
		if err != nil {
			return err
		}
		attempts, err := st.store.ListRetryAttempts(ctx, ev.ID)
		if err != nil {
			return err
		}
		return printJSON(eventView{Event: ev, Payload: string(ev.Payload), Attempts: attempts})
	})
}

func runEventRetry(args []string) int {
	fs := flag.NewFlagSet("event retry", flag.ContinueOnError)
	configPath := configFlag(fs)
	pos, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if len(pos) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: hookrelay event retry <event-id>")
		return 1
	}

	return withStore(*configPath, true, func(ctx context.Context, st *stack, logger *slog.Logger) error {
		sched := retry.New(retry.Config{Delays: st.cfg.Retry.Delays}, st.store, st.queue, nil, logger)
		ev, err := sched.Requeue(ctx, pos[0], cliActor())
		if errors.Is(err, eventstore.ErrInvalidTransition) {
			return fmt.Errorf("event %s is not dead-lettered", pos[0])
		}
		if err != nil {
			return err
		}
		fmt.Printf("Event %s requeued (status %s)\n", ev.ID, ev.Status)
		return nil
	})
}
