package lock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAcquireRecordsPID(t *testing.T) {
	t.Parallel()

	lockPath := PathFor(filepath.Join(t.TempDir(), "hookrelay.db"))
	l, err := Acquire(lockPath)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	t.Cleanup(func() { _ = l.Release() })

	pid, err := Holder(lockPath)
	if err != nil {
		t.Fatalf("Holder: %v", err)
	}
	if pid != os.Getpid() {
		t.Fatalf("Holder = %d, want %d", pid, os.Getpid())
	}
}

func TestSecondAcquireFailsUntilRelease(t *testing.T) {
	t.Parallel()

	lockPath := PathFor(filepath.Join(t.TempDir(), "hookrelay.db"))
	first, err := Acquire(lockPath)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if _, err := Acquire(lockPath); !errors.Is(err, ErrHeld) {
		t.Fatalf("second Acquire error = %v, want ErrHeld", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	second, err := Acquire(lockPath)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	_ = second.Release()
	if err := second.Release(); err != nil {
		t.Fatalf("double Release: %v", err)
	}
}
