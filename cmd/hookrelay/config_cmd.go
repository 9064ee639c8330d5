package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mattjoyce/hookrelay/internal/config"
	"github.com/mattjoyce/hookrelay/internal/doctor"
)

const configHelp = `Usage: hookrelay config <action> [--config PATH]
Actions: check [--role R] [--json], hash, verify, get <path> [--json]`

func runConfigNoun(args []string) int {
	return dispatch("config", args, map[string]func([]string) int{
		"check":  runConfigCheck,
		"hash":   runConfigHash,
		"verify": runConfigVerify,
		"get":    runConfigGet,
	}, configHelp)
}

// resolveConfigFile maps a directory argument to its config.yaml.
func resolveConfigFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("config file not found: %s", abs)
	}
	if info.IsDir() {
		abs = filepath.Join(abs, "config.yaml")
	}
	return abs, nil
}

func runConfigCheck(args []string) int {
	fs := flag.NewFlagSet("config check", flag.ContinueOnError)
	configPath := configFlag(fs)
	role := fs.String("role", doctor.RoleAll, "Process role to validate for (all, ingest, store)")
	jsonOut := fs.Bool("json", false, "Output JSON")
	if _, err := parseInterleaved(fs, args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		if *jsonOut {
			out, _ := json.MarshalIndent(doctor.Result{
				Valid:  false,
				Role:   *role,
				Errors: []doctor.Issue{{Category: "config", Message: err.Error()}},
			}, "", "  ")
			fmt.Println(string(out))
		} else {
			fmt.Fprintf(os.Stderr, "Configuration invalid: %v\n", err)
		}
		return 1
	}

	result := doctor.New(cfg, *role).Validate()
	if *jsonOut {
		out, err := doctor.FormatJSON(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render result: %v\n", err)
			return 1
		}
		fmt.Println(out)
	} else {
		fmt.Print(doctor.FormatHuman(result))
	}
	if !result.Valid {
		return 1
	}
	return 0
}

func runConfigHash(args []string) int {
	fs := flag.NewFlagSet("config hash", flag.ContinueOnError)
	configPath := configFlag(fs)
	if _, err := parseInterleaved(fs, args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	path, err := resolveConfigFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// Never lock in a config that would not load.
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if _, err := config.Parse(data); err != nil {
		fmt.Fprintf(os.Stderr, "Refusing to hash %s: %v\n", path, err)
		return 1
	}

	hash, err := config.WriteChecksum(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("%s  %s\n", hash, filepath.Base(path))
	return 0
}

func runConfigVerify(args []string) int {
	fs := flag.NewFlagSet("config verify", flag.ContinueOnError)
	configPath := configFlag(fs)
	if _, err := parseInterleaved(fs, args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	path, err := resolveConfigFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := config.VerifyChecksum(path); err != nil {
		if errors.Is(err, config.ErrNoChecksums) {
			fmt.Fprintf(os.Stderr, "No checksums recorded for %s (run 'hookrelay config hash')\n", filepath.Dir(path))
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		return 1
	}
	fmt.Printf("%s: OK\n", filepath.Base(path))
	return 0
}

func runConfigGet(args []string) int {
	fs := flag.NewFlagSet("config get", flag.ContinueOnError)
	configPath := configFlag(fs)
	jsonOut := fs.Bool("json", false, "Output JSON")
	pos, err := parseInterleaved(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if len(pos) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: hookrelay config get [path] [--json]")
		return 1
	}
	path := ""
	if len(pos) == 1 {
		path = pos[0]
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	val, err := cfg.GetPath(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *jsonOut {
		out, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}
	switch v := val.(type) {
	case string, int, int64, float64, bool:
		fmt.Println(v)
	default:
		out, err := yaml.Marshal(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Print(string(out))
	}
	return 0
}
