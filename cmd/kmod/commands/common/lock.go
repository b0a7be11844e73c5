// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/automa-saga/logx"
	"github.com/gofrs/flock"
	"github.com/hashgraph/solo-kmod/internal/config"
	"github.com/joomcode/errorx"
)

const lockRetryDelay = 100 * time.Millisecond

// WithModuleLock runs fn while holding the advisory lock configured for module mutations.
// Concurrent kmod processes wait up to the configured timeout for the lock.
func WithModuleLock(ctx context.Context, cfg config.ModuleConfig, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(cfg.LockFile), 0o755); err != nil {
		return errorx.IllegalState.Wrap(err, "failed to create lock directory for %q", cfg.LockFile)
	}

	fileLock := flock.New(cfg.LockFile)
	lockCtx, cancel := context.WithTimeout(ctx, cfg.LockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, lockRetryDelay)
	if !locked {
		if err == nil || lockCtx.Err() != nil {
			return errorx.TimeoutElapsed.New("timed out after %s acquiring module lock %q", cfg.LockTimeout, cfg.LockFile).
				WithProperty(errorx.PropertyPayload(), cfg.LockFile)
		}
		return errorx.IllegalState.Wrap(err, "failed to acquire module lock %q", cfg.LockFile)
	}

	defer func() {
		e := fileLock.Unlock()
		if e != nil {
			logx.As().Warn().Err(e).Str("lockPath", cfg.LockFile).Msg("failed to release module lock")
		}
	}()

	logx.As().Debug().Str("lockPath", cfg.LockFile).Str("module", cfg.Name).Msg("Acquired module lock")
	return fn()
}
