// Package crypto provides the cryptographic interfaces and key material shared by
// sigil's signing backends.
//
// Two unrelated primitives sit behind the same capability surface: a keyed hash
// (BLAKE3, package keyed) and an asymmetric signature scheme (Ed25519, package
// native). Callers pick one with an Algorithm tag and never touch the primitive
// directly.
package crypto

import (
	"context"
	"io"
)

// Signer produces a raw signature over everything readable from r.
// Implementations must be deterministic: signing the same input twice with the
// same key produces the same signature.
type Signer interface {
	// Sign consumes r to EOF and returns the raw signature bytes.
	// Returns an error wrapping errors.ErrIO if r fails.
	Sign(ctx context.Context, r io.Reader) ([]byte, error)
}

// Verifier checks a raw signature against everything readable from r.
type Verifier interface {
	// Verify consumes r to EOF and reports whether sig is valid for it.
	// A signature that does not match is (false, nil), not an error.
	// Errors are reserved for verification that could not run: unreadable
	// input (errors.ErrIO) or a malformed signature (errors.ErrSignatureFormat).
	Verify(ctx context.Context, r io.Reader, sig []byte) (bool, error)
}

// Backend loads key material from disk into a Signer or Verifier for one algorithm.
type Backend interface {
	// Algorithm returns the tag this backend serves.
	Algorithm() Algorithm

	// LoadSigner reads the signing key at path.
	LoadSigner(path string) (Signer, error)

	// LoadVerifier reads the verifying key at path. For a keyed hash this is
	// the same shared secret used for signing.
	LoadVerifier(path string) (Verifier, error)
}
