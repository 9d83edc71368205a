// Package keyed provides message authentication with a BLAKE3 keyed hash.
//
// The same 32-byte secret signs and verifies; there is no public half.
package keyed

import (
	"context"
	"crypto/subtle"
	"io"

	"github.com/rs/zerolog"
	"lukechampine.com/blake3"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/ctxutil"
	"github.com/mrz1836/sigil/internal/errors"
)

// Hasher signs and verifies with a BLAKE3 keyed hash.
// It implements both crypto.Signer and crypto.Verifier.
type Hasher struct {
	key crypto.Key
}

// New creates a Hasher for the given key.
func New(key crypto.Key) *Hasher {
	return &Hasher{key: key}
}

// Sum returns the 32-byte keyed digest of everything read from r.
func (h *Hasher) Sum(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	mac := blake3.New(constants.Blake3SignatureSize, h.key[:])
	n, err := io.Copy(mac, ctxutil.Reader(ctx, r))
	if err != nil {
		if ctxErr := ctxutil.Canceled(ctx); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Join(errors.ErrIO, err, "reading input")
	}
	zerolog.Ctx(ctx).Debug().Int64("bytes", n).Str("algorithm", crypto.AlgorithmBlake3.String()).Msg("input hashed")

	return mac.Sum(nil), nil
}

// Sign implements crypto.Signer.
func (h *Hasher) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	return h.Sum(ctx, r)
}

// Verify implements crypto.Verifier. The digest comparison is constant time.
// A signature of the wrong length is simply not a match.
func (h *Hasher) Verify(ctx context.Context, r io.Reader, sig []byte) (bool, error) {
	digest, err := h.Sum(ctx, r)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(digest, sig) == 1, nil
}

var (
	_ crypto.Signer   = (*Hasher)(nil)
	_ crypto.Verifier = (*Hasher)(nil)
)
