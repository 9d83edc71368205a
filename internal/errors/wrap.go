package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage.
//
// The wrapped error preserves the original error chain, enabling
// errors.Is() checks to continue working:
//
//	if err := loadKey(path); err != nil {
//	    return errors.Wrap(err, "failed to load key")
//	}
//
// Callers can still check for sentinel errors:
//
//	if errors.Is(err, errors.ErrKeyFormat) {
//	    // Handle short key material
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage.
//
//	return errors.Wrapf(err, "failed to read key %s", path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Join attaches a sentinel kind to a lower-level cause so that both
// errors.Is(err, kind) and errors.Is(err, cause) hold.
//
//	return errors.Join(errors.ErrIO, err, "reading input")
func Join(kind, cause error, msg string) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", msg, kind)
	}
	return fmt.Errorf("%s: %w: %w", msg, kind, cause)
}
