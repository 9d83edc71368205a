// Package keystore persists generated key artifacts to a key directory.
package keystore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/flock"
)

// FileNames returns the file names used for alg's artifacts, in artifact order.
func FileNames(alg crypto.Algorithm) ([]string, error) {
	switch alg {
	case crypto.AlgorithmBlake3:
		return []string{constants.Blake3KeyFileName}, nil
	case crypto.AlgorithmEd25519:
		return []string{constants.Ed25519PublicKeyFileName, constants.Ed25519PrivateKeyFileName}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "%q", string(alg))
	}
}

// Paths returns the full artifact paths for alg inside dir.
func Paths(dir string, alg crypto.Algorithm) ([]string, error) {
	names, err := FileNames(alg)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// Existing returns the artifact paths for alg that already exist in dir.
func Existing(dir string, alg crypto.Algorithm) ([]string, error) {
	paths, err := Paths(dir, alg)
	if err != nil {
		return nil, err
	}
	var found []string
	for _, p := range paths {
		if _, statErr := os.Stat(p); statErr == nil {
			found = append(found, p)
		}
	}
	return found, nil
}

// WriteOptions controls WriteArtifacts.
type WriteOptions struct {
	// Force overwrites existing key files.
	Force bool

	// LockTimeout bounds the wait for the directory lock.
	// Zero means constants.KeyLockTimeout.
	LockTimeout time.Duration
}

// WriteArtifacts writes artifacts into dir using the file names for alg and
// returns the written paths. dir must already exist. Existing key files are
// left alone unless opts.Force is set. Writes happen under an exclusive lock
// on dir/.sigil.lock.
func WriteArtifacts(ctx context.Context, dir string, alg crypto.Algorithm, artifacts [][]byte, opts WriteOptions) ([]string, error) {
	paths, err := Paths(dir, alg)
	if err != nil {
		return nil, err
	}
	if len(artifacts) != len(paths) {
		return nil, fmt.Errorf("%w: %s expects %d artifacts, got %d",
			errors.ErrKeyFormat, alg, len(paths), len(artifacts))
	}

	info, err := os.Stat(dir)
	switch {
	case err != nil:
		return nil, errors.Join(errors.ErrNotDirectory, err, dir)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s", errors.ErrNotDirectory, dir)
	}

	timeout := opts.LockTimeout
	if timeout <= 0 {
		timeout = constants.KeyLockTimeout
	}
	release, err := flock.Acquire(ctx, filepath.Join(dir, constants.KeyDirLockFileName), timeout)
	if err != nil {
		return nil, err
	}
	defer func() {
		if relErr := release(); relErr != nil {
			zerolog.Ctx(ctx).Warn().Err(relErr).Msg("failed to release key dir lock")
		}
	}()

	if !opts.Force {
		existing, existErr := Existing(dir, alg)
		if existErr != nil {
			return nil, existErr
		}
		if len(existing) > 0 {
			return nil, fmt.Errorf("%w: %s", errors.ErrKeyExists, existing[0])
		}
	}

	for i, p := range paths {
		if err := writeKeyFile(p, artifacts[i]); err != nil {
			return nil, err
		}
		zerolog.Ctx(ctx).Debug().Str("path", p).Msg("key file written")
	}
	return paths, nil
}

// writeKeyFile writes data to a temp file next to path and renames it into
// place so a reader never sees a partial key.
func writeKeyFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Join(errors.ErrIO, err, "creating key file")
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err = tmp.Chmod(constants.KeyFilePerm); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Join(errors.ErrIO, err, "setting key file mode")
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Join(errors.ErrIO, err, "writing key file")
	}
	if err = tmp.Close(); err != nil {
		cleanup()
		return errors.Join(errors.ErrIO, err, "closing key file")
	}
	if err = os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.Join(errors.ErrIO, err, "renaming key file")
	}
	return nil
}
