package flock

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// Release drops a lock taken by Acquire and closes the lock file.
type Release func() error

// Acquire takes an exclusive lock on path, creating the file if needed.
// It polls until the lock is free, timeout elapses (errors.ErrLocked) or ctx is done.
func Acquire(ctx context.Context, path string, timeout time.Duration) (Release, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, constants.KeyFilePerm) //nolint:gosec // G304: lock path is derived from the key dir
	if err != nil {
		return nil, errors.Join(errors.ErrIO, err, "opening lock file")
	}

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(constants.KeyLockRetryInterval)
	defer ticker.Stop()

	for {
		if err = tryLock(f.Fd()); err == nil {
			break
		}
		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("%w: %s", errors.ErrLocked, path)
		}
		select {
		case <-ctx.Done():
			_ = f.Close()
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return func() error {
		unlockErr := unlock(f.Fd())
		closeErr := f.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}
