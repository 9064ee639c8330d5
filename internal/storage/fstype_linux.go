package storage

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Magics fit in 32 bits; Statfs_t.Type width varies by architecture.
var linuxMagics = map[uint32]string{
	unix.NFS_SUPER_MAGIC:  "nfs",
	unix.CIFS_SUPER_MAGIC: "cifs",
	unix.SMB_SUPER_MAGIC:  "smbfs",
	unix.SMB2_SUPER_MAGIC: "smb2",
	unix.CEPH_SUPER_MAGIC: "ceph",
	unix.V9FS_MAGIC:       "9p",
	unix.AFS_SUPER_MAGIC:  "afs",
	unix.CODA_SUPER_MAGIC: "coda",
}

func filesystemType(dir string) (string, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return "", fmt.Errorf("statfs: %w", err)
	}
	if name, ok := linuxMagics[uint32(st.Type)]; ok {
		return name, nil
	}
	return fmt.Sprintf("%#x", uint32(st.Type)), nil
}
