package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComputeBlake3Hash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.yaml")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}
	h, err := ComputeBlake3Hash(path)
	if err != nil {
		t.Fatalf("ComputeBlake3Hash() error = %v", err)
	}
	// BLAKE3("hello")
	want := "ea8f163db38682925e4491c5e58d4bb3506ef8c14eb78a86e908c5624a67200f"
	if h != want {
		t.Errorf("hash = %s, want %s", h, want)
	}
}

func TestWriteAndVerifyChecksum(t *testing.T) {
	path := writeConfig(t, "service:\n  name: locked\n")

	if err := VerifyChecksum(path); !errors.Is(err, ErrNoChecksums) {
		t.Fatalf("VerifyChecksum() before lock = %v, want ErrNoChecksums", err)
	}
	if _, err := WriteChecksum(path); err != nil {
		t.Fatalf("WriteChecksum() error = %v", err)
	}
	if err := VerifyChecksum(path); err != nil {
		t.Fatalf("VerifyChecksum() error = %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load() of locked config error = %v", err)
	}

	if err := os.WriteFile(path, []byte("service:\n  name: tampered\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	err := VerifyChecksum(path)
	if err == nil || !strings.Contains(err.Error(), "hash mismatch") {
		t.Fatalf("VerifyChecksum() after edit = %v, want mismatch", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() must refuse a config that no longer matches its checksum")
	}
}

func TestWriteChecksumKeepsOtherEntries(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte(filepath.Base(p)), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := WriteChecksum(a); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteChecksum(b); err != nil {
		t.Fatal(err)
	}
	m, err := LoadChecksums(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Hashes) != 2 {
		t.Errorf("manifest has %d entries, want 2", len(m.Hashes))
	}
}
