package signing

import (
	"encoding/base64"

	"github.com/mrz1836/sigil/internal/errors"
)

// EncodeSignature renders raw signature bytes as URL-safe base64 without padding.
func EncodeSignature(sig []byte) string {
	return base64.RawURLEncoding.EncodeToString(sig)
}

// DecodeSignature parses URL-safe base64 without padding.
// Any other alphabet, padding or stray characters fail with errors.ErrDecode.
func DecodeSignature(encoded string) ([]byte, error) {
	sig, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(errors.ErrDecode, err, "decoding signature")
	}
	return sig, nil
}
