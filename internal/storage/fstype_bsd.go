//go:build darwin || freebsd

package storage

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func filesystemType(dir string) (string, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return "", fmt.Errorf("statfs: %w", err)
	}
	return unix.ByteSliceToString(st.Fstypename[:]), nil
}
