package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// ChecksumFile is the manifest written next to a locked config.
const ChecksumFile = ".checksums"

// ErrNoChecksums means the config directory has no manifest.
var ErrNoChecksums = errors.New("checksums file not found (run 'hookrelay config hash')")

// ChecksumManifest records the expected BLAKE3 hash per config file name.
type ChecksumManifest struct {
	Version     int               `yaml:"version"`
	GeneratedAt string            `yaml:"generated_at"`
	Hashes      map[string]string `yaml:"hashes"`
}

// ComputeBlake3Hash computes the BLAKE3 hash of a file.
func ComputeBlake3Hash(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// VerifyFileHash verifies a file against an expected BLAKE3 hash.
func VerifyFileHash(filePath, expectedHash string) error {
	actualHash, err := ComputeBlake3Hash(filePath)
	if err != nil {
		return fmt.Errorf("failed to compute hash: %w", err)
	}
	if actualHash != expectedHash {
		return fmt.Errorf("hash mismatch for %s: expected %s, got %s",
			filepath.Base(filePath), expectedHash, actualHash)
	}
	return nil
}

// WriteChecksum hashes configPath and records it in the directory's
// manifest, keeping entries for other files.
func WriteChecksum(configPath string) (string, error) {
	dir := filepath.Dir(configPath)
	hash, err := ComputeBlake3Hash(configPath)
	if err != nil {
		return "", err
	}

	manifest, err := LoadChecksums(dir)
	if errors.Is(err, ErrNoChecksums) {
		manifest = &ChecksumManifest{Version: 1, Hashes: map[string]string{}}
	} else if err != nil {
		return "", err
	}
	manifest.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	manifest.Hashes[filepath.Base(configPath)] = hash

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("failed to marshal checksums: %w", err)
	}
	// contains expected hashes
	if err := os.WriteFile(filepath.Join(dir, ChecksumFile), data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write checksums: %w", err)
	}
	return hash, nil
}

// LoadChecksums reads the manifest from a config directory.
func LoadChecksums(configDir string) (*ChecksumManifest, error) {
	data, err := os.ReadFile(filepath.Join(configDir, ChecksumFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoChecksums
		}
		return nil, fmt.Errorf("failed to read checksums: %w", err)
	}

	var manifest ChecksumManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse checksums: %w", err)
	}
	if manifest.Version != 1 {
		return nil, fmt.Errorf("unsupported checksums version: %d", manifest.Version)
	}
	if manifest.Hashes == nil {
		manifest.Hashes = map[string]string{}
	}
	return &manifest, nil
}

// VerifyChecksum checks configPath against its directory's manifest.
func VerifyChecksum(configPath string) error {
	manifest, err := LoadChecksums(filepath.Dir(configPath))
	if err != nil {
		return err
	}
	name := filepath.Base(configPath)
	expected, ok := manifest.Hashes[name]
	if !ok {
		return fmt.Errorf("config file %s has no hash in checksums (run 'hookrelay config hash')", name)
	}
	if err := VerifyFileHash(configPath, expected); err != nil {
		return fmt.Errorf("config verification failed: %w\n"+
			"If you edited this file intentionally, run: hookrelay config hash", err)
	}
	return nil
}

// verifyIfLocked enforces the manifest only when one exists.
func verifyIfLocked(configPath string) error {
	err := VerifyChecksum(configPath)
	if errors.Is(err, ErrNoChecksums) {
		return nil
	}
	return err
}
