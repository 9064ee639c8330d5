package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"
)

var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

const configEnv = "HOOKRELAY_CONFIG"

func main() {
	os.Exit(runCLI(os.Args[1:]))
}

func runCLI(cliArgs []string) int {
	if len(cliArgs) < 1 {
		printUsage()
		return 1
	}

	cmd := cliArgs[0]
	args := cliArgs[1:]

	switch cmd {
	case "system":
		return runSystemNoun(args)
	case "tenant":
		return runTenantNoun(args)
	case "provider":
		return runProviderNoun(args)
	case "event":
		return runEventNoun(args)
	case "config":
		return runConfigNoun(args)
	case "version", "--version":
		return runVersion(args)
	case "help", "--help", "-h":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		return 1
	}
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

func runVersion(args []string) int {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "Output version metadata as JSON")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Usage: hookrelay version [--json]")
		return 1
	}

	info := currentVersionInfo()

	if *jsonOut {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render version JSON: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	fmt.Printf("hookrelay %s\n", info.Version)
	fmt.Printf("commit: %s\n", info.Commit)
	fmt.Printf("built_at: %s\n", info.BuildTime)
	return 0
}

func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:   strings.TrimSpace(version),
		Commit:    "unknown",
		BuildTime: "unknown",
	}
	if info.Version == "" {
		info.Version = "0.0.0-dev"
	}

	commit := strings.TrimSpace(gitCommit)
	if commit == "" || commit == "unknown" {
		commit = readBuildSetting("vcs.revision")
	}
	if commit != "" {
		info.Commit = shortenCommit(commit)
	}

	built := strings.TrimSpace(buildDate)
	if built == "" || built == "unknown" {
		built = readBuildSetting("vcs.time")
	}
	if t, err := time.Parse(time.RFC3339Nano, built); err == nil {
		info.BuildTime = t.UTC().Format(time.RFC3339)
	}
	return info
}

func shortenCommit(commit string) string {
	if len(commit) <= 12 {
		return commit
	}
	return commit[:12]
}

func readBuildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return strings.TrimSpace(setting.Value)
		}
	}
	return ""
}

func printUsage() {
	fmt.Print(`hookrelay - multi-tenant webhook ingestion and delivery

Usage:
  hookrelay <noun> <action> [flags]

System Commands:
  system start [--role all|ingest|store]   Run the service in the foreground

Tenant Commands:
  tenant add <name> <slug>                 Create a tenant

Provider Commands:
  provider add <tenant-slug> <kind>        Configure a provider (stripe, github, shopify, generic)
  provider rotate-secret <tenant-slug> <kind>
                                           Replace the signing secret (read from stdin or --from-env)
  provider activate <tenant-slug> <kind>
  provider deactivate <tenant-slug> <kind>

Event Commands:
  event list <tenant-slug> [--status S]    List recent events
  event show <event-id>                    Show an event and its retry attempts
  event retry <event-id>                   Requeue a dead-lettered event

Config Commands:
  config check [--role R]                  Validate configuration and host readiness
  config hash                              Record the config checksum
  config verify                            Check the config against its checksum
  config get <path>                        Print one value (secrets masked)

General:
  version [--json]                         Show version information
  help                                     Show this help message

Every command takes --config PATH (default $HOOKRELAY_CONFIG or ./config.yaml).
`)
}

func isHelpToken(token string) bool {
	return token == "help" || token == "--help" || token == "-h"
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// parseInterleaved parses flags that may appear before, between or after
// positional arguments, returning the positionals in order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func defaultConfigPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	return "config.yaml"
}

func configFlag(fs *flag.FlagSet) *string {
	return fs.String("config", defaultConfigPath(), "Path to configuration file or directory")
}

// dispatch runs the action named by args[0] from actions.
func dispatch(noun string, args []string, actions map[string]func([]string) int, help string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, help)
		return 1
	}
	if isHelpToken(args[0]) {
		fmt.Println(help)
		return 0
	}
	run, ok := actions[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown %s action: %s\n", noun, args[0])
		fmt.Fprintln(os.Stderr, help)
		return 1
	}
	return run(args[1:])
}
