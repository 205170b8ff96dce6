package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/hugoduncan/mcp-tasks/types"
)

func TestWithLockRunsOperation(t *testing.T) {
	cfg := LockConfig{BaseDir: t.TempDir()}

	ran := false
	err := WithLock(cfg, time.Second, func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithLock failed: %v", err)
	}
	if !ran {
		t.Error("operation did not run")
	}
}

func TestWithLockReturnsOperationError(t *testing.T) {
	cfg := LockConfig{BaseDir: t.TempDir()}

	opErr := errors.New("operation failed")
	err := WithLock(cfg, time.Second, func() error { return opErr })
	if !errors.Is(err, opErr) {
		t.Errorf("expected operation error back unchanged, got: %v", err)
	}

	// The lock must be free again after the failed operation.
	if err := WithLock(cfg, time.Second, func() error { return nil }); err != nil {
		t.Errorf("lock not released after operation error: %v", err)
	}
}

func TestWithLockReleasesOnPanic(t *testing.T) {
	cfg := LockConfig{BaseDir: t.TempDir()}

	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic to propagate")
			}
			if r != "Test exception" {
				t.Errorf("unexpected panic value: %v", r)
			}
		}()
		_ = WithLock(cfg, time.Second, func() error {
			panic("Test exception")
		})
	}()

	// A subsequent WithLock on the same base directory must not hang.
	done := make(chan error, 1)
	go func() {
		done <- WithLock(cfg, time.Second, func() error { return nil })
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("lock not released after panic: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WithLock hung after panic; lock was not released")
	}
}

func TestWithLockTimeout(t *testing.T) {
	baseDir := t.TempDir()
	cfg := LockConfig{BaseDir: baseDir}

	// Hold the lock from a separate file handle.
	holder := flock.New(LockFilePath(baseDir))
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("could not take holder lock: locked=%v err=%v", locked, err)
	}
	defer func() { _ = holder.Unlock() }()

	start := time.Now()
	err = WithLock(cfg, 100*time.Millisecond, func() error {
		t.Error("operation must not run when the lock is held elsewhere")
		return nil
	})
	elapsed := time.Since(start)

	if !types.IsLockTimeout(err) {
		t.Fatalf("expected LOCK_TIMEOUT error, got: %v", err)
	}
	if elapsed > 3*time.Second {
		t.Errorf("timeout took far too long: %v", elapsed)
	}
}

func TestWithLockZeroTimeout(t *testing.T) {
	baseDir := t.TempDir()
	cfg := LockConfig{BaseDir: baseDir}

	// Uncontended: a zero timeout still makes one acquisition attempt.
	ran := false
	if err := WithLock(cfg, 0, func() error { ran = true; return nil }); err != nil {
		t.Fatalf("zero-timeout WithLock on free lock failed: %v", err)
	}
	if !ran {
		t.Error("operation did not run on free lock")
	}

	// Contended: a zero timeout returns the timeout error without blocking.
	holder := flock.New(LockFilePath(baseDir))
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("could not take holder lock: locked=%v err=%v", locked, err)
	}
	defer func() { _ = holder.Unlock() }()

	err = WithLock(cfg, 0, func() error {
		t.Error("operation must not run")
		return nil
	})
	if !types.IsLockTimeout(err) {
		t.Errorf("expected LOCK_TIMEOUT error, got: %v", err)
	}
}

func TestWithLockBaseDirIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	notADir := filepath.Join(dir, "file")
	if err := os.WriteFile(notADir, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := WithLock(LockConfig{BaseDir: notADir}, time.Second, func() error {
		t.Error("operation must not run")
		return nil
	})
	if err == nil {
		t.Fatal("expected an error when the base directory is a regular file")
	}
	if types.IsLockTimeout(err) {
		t.Errorf("environment failure must not be reported as a lock timeout: %v", err)
	}
}

func TestWithLockCreatesBaseDir(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "nested", "deeper")

	if err := WithLock(LockConfig{BaseDir: baseDir}, time.Second, func() error { return nil }); err != nil {
		t.Fatalf("WithLock failed: %v", err)
	}
	if _, err := os.Stat(LockFilePath(baseDir)); err != nil {
		t.Errorf("lock file not created: %v", err)
	}
}
