package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/hugoduncan/mcp-tasks/types"
)

// LockFileName is the fixed lock file name under the base directory. Its
// content is never read; it exists only as the flock target.
const LockFileName = "tasks.lock"

// lockRetryDelay is the poll interval while waiting for a contended lock.
const lockRetryDelay = 25 * time.Millisecond

// LockConfig identifies the base directory holding the lock file.
type LockConfig struct {
	BaseDir string
}

// LockFilePath returns the lock file path for a base directory.
func LockFilePath(baseDir string) string {
	return filepath.Join(baseDir, LockFileName)
}

// WithLock acquires the exclusive advisory lock for cfg.BaseDir, runs op
// exactly once while holding it, and releases the lock on every exit path,
// including a panic inside op.
//
// A timeout of zero makes a single non-blocking attempt. If the lock cannot
// be acquired within the timeout, WithLock returns a *types.TaskError with
// code LOCK_TIMEOUT and op does not run. Failures to set up or open the lock
// file (for example the base directory path names a regular file) surface as
// ordinary wrapped errors.
func WithLock(cfg LockConfig, timeout time.Duration, op func() error) error {
	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create lock directory %s: %w", cfg.BaseDir, err)
	}

	flk := flock.New(LockFilePath(cfg.BaseDir))

	var locked bool
	var err error
	if timeout <= 0 {
		locked, err = flk.TryLock()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		locked, err = flk.TryLockContext(ctx, lockRetryDelay)
		cancel()
		if errors.Is(err, context.DeadlineExceeded) {
			err = nil
		}
	}
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", flk.Path(), err)
	}
	if !locked {
		return types.NewLockTimeoutError(flk.Path(), timeout.Milliseconds())
	}

	// Release before any panic from op escapes.
	defer func() { _ = flk.Unlock() }()

	return op()
}
