// Package input resolves an input designator to a readable byte stream.
//
// The designator "-" selects the process standard input; anything else is a
// filesystem path. The resolver does not buffer or limit the stream.
package input

import (
	"io"
	"os"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// Stdin is the stream returned for the "-" designator. Tests may replace it.
//
//nolint:gochecknoglobals // injectable for tests
var Stdin io.Reader = os.Stdin

// Open returns a stream for designator. Closing the stdin stream is a no-op so
// callers can always defer Close.
// Open failures wrap errors.ErrIO; a missing file also matches fs.ErrNotExist.
func Open(designator string) (io.ReadCloser, error) {
	if designator == constants.StdinDesignator {
		return io.NopCloser(Stdin), nil
	}
	f, err := os.Open(designator) //nolint:gosec // G304: input path is user-supplied
	if err != nil {
		return nil, errors.Join(errors.ErrIO, err, "opening input")
	}
	return f, nil
}

// Exists reports whether designator is stdin or names an existing regular path.
func Exists(designator string) bool {
	if designator == constants.StdinDesignator {
		return true
	}
	info, err := os.Stat(designator)
	return err == nil && !info.IsDir()
}
