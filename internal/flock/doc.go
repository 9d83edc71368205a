// Package flock guards key directories with an advisory lock file so two
// concurrent `text generate` runs cannot interleave their writes.
//
// Usage:
//
//	release, err := flock.Acquire(ctx, filepath.Join(dir, ".sigil.lock"), 5*time.Second)
//	if err != nil {
//	    return err
//	}
//	defer release()
package flock
