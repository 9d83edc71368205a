package crypto

import (
	"fmt"
	"os"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// KeySize is the number of significant bytes in a key.
const KeySize = constants.KeySize

// Key is 32 bytes of raw key material. For blake3 it is the MAC key; for
// ed25519 it is either the private seed or the public key, depending on which
// file it came from. The engine trusts the caller to load the right file.
type Key [KeySize]byte

// NewKey copies the first 32 bytes of raw into a Key.
// Inputs shorter than 32 bytes fail with errors.ErrKeyFormat. Longer inputs are
// accepted and truncated, so a key file may carry a trailing newline.
func NewKey(raw []byte) (Key, error) {
	var k Key
	if len(raw) < KeySize {
		return k, fmt.Errorf("%w: need %d bytes, got %d", errors.ErrKeyFormat, KeySize, len(raw))
	}
	copy(k[:], raw[:KeySize])
	return k, nil
}

// LoadKey reads the key file at path and applies the NewKey rules.
// Read failures wrap errors.ErrIO.
func LoadKey(path string) (Key, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: key path is user-supplied
	if err != nil {
		return Key{}, errors.Join(errors.ErrIO, err, "reading key file")
	}
	k, err := NewKey(data)
	if err != nil {
		return Key{}, errors.Wrapf(err, "key file %s", path)
	}
	return k, nil
}

// Bytes returns a copy of the key as a slice.
func (k Key) Bytes() []byte {
	b := make([]byte, KeySize)
	copy(b, k[:])
	return b
}

// String never prints key material.
func (k Key) String() string {
	return "crypto.Key([REDACTED])"
}
