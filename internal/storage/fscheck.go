package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// errFSTypeUnknown is returned by platforms that cannot name a mount's
// filesystem. The store opens without the check there.
var errFSTypeUnknown = errors.New("filesystem type not detectable on this platform")

// SQLite advisory locks are unreliable on these, which would let two
// writers both pass the admission uniqueness check.
var networkFilesystems = map[string]bool{
	"9p":     true,
	"afpfs":  true,
	"afs":    true,
	"ceph":   true,
	"cifs":   true,
	"coda":   true,
	"nfs":    true,
	"smb2":   true,
	"smbfs":  true,
	"webdav": true,
}

// NetworkFilesystemError reports a SQLite path on a network mount.
type NetworkFilesystemError struct {
	Path   string
	FSType string
}

func (e *NetworkFilesystemError) Error() string {
	return fmt.Sprintf("store path %q is on network filesystem %q; use a local store.path or switch store.driver to postgres", e.Path, e.FSType)
}

// CheckLocalFilesystem reports whether path may hold a SQLite store. It
// returns a *NetworkFilesystemError for network mounts.
func CheckLocalFilesystem(path string) error {
	return checkStorePath(path, filesystemType)
}

func checkStorePath(path string, fsType func(string) (string, error)) error {
	if path == "" {
		return errors.New("sqlite path is empty")
	}
	dir, err := nearestExistingDir(path)
	if err != nil {
		return fmt.Errorf("resolve store path %q: %w", path, err)
	}
	kind, err := fsType(dir)
	switch {
	case errors.Is(err, errFSTypeUnknown):
		return nil
	case err != nil:
		return fmt.Errorf("inspect filesystem of %q: %w", dir, err)
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	if networkFilesystems[kind] {
		return &NetworkFilesystemError{Path: path, FSType: kind}
	}
	return nil
}

// nearestExistingDir climbs from path to the first ancestor that exists,
// since the database file and its directory may not be created yet.
func nearestExistingDir(path string) (string, error) {
	cur, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(cur); err == nil {
			return cur, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		up := filepath.Dir(cur)
		if up == cur {
			return "", fmt.Errorf("no existing ancestor of %q", path)
		}
		cur = up
	}
}
