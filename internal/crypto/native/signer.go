// Package native provides Ed25519 signing using standard crypto libraries.
package native

import (
	"context"
	"crypto/ed25519"
	"io"

	"filippo.io/edwards25519"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
)

// Signer implements crypto.Signer using an Ed25519 key expanded from a 32-byte seed.
type Signer struct {
	privKey ed25519.PrivateKey
}

// NewSigner expands seed into a signing key.
func NewSigner(seed crypto.Key) *Signer {
	return &Signer{privKey: ed25519.NewKeyFromSeed(seed[:])}
}

// Sign signs the full contents of r using Ed25519.
func (s *Signer) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	msg, err := crypto.ReadInput(ctx, r)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(s.privKey, msg), nil
}

// PublicKey returns the 32-byte verifying key for this signer.
func (s *Signer) PublicKey() crypto.Key {
	var pub crypto.Key
	copy(pub[:], s.privKey.Public().(ed25519.PublicKey))
	return pub
}

// Seed returns the 32-byte private seed for this signer.
func (s *Signer) Seed() crypto.Key {
	var seed crypto.Key
	copy(seed[:], s.privKey.Seed())
	return seed
}

// Verifier implements crypto.Verifier for an Ed25519 public key.
type Verifier struct {
	pubKey ed25519.PublicKey
}

// NewVerifier creates a Verifier from a 32-byte public key.
// Bytes that do not encode a curve point fail with errors.ErrKeyFormat.
func NewVerifier(pub crypto.Key) (*Verifier, error) {
	if _, err := new(edwards25519.Point).SetBytes(pub[:]); err != nil {
		return nil, errors.Join(errors.ErrKeyFormat, err, "decoding ed25519 public key")
	}
	return &Verifier{pubKey: ed25519.PublicKey(pub.Bytes())}, nil
}

// Verify checks sig over the full contents of r.
// A signature shorter than 64 bytes is a format error and is rejected before the
// input is read; bytes past the first 64 are ignored. Every rejection by the
// Ed25519 implementation is reported as false.
func (v *Verifier) Verify(ctx context.Context, r io.Reader, sig []byte) (bool, error) {
	if len(sig) < constants.Ed25519SignatureSize {
		return false, errors.Wrapf(errors.ErrSignatureFormat,
			"ed25519 signature needs %d bytes, got %d", constants.Ed25519SignatureSize, len(sig))
	}
	msg, err := crypto.ReadInput(ctx, r)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(v.pubKey, msg, sig[:constants.Ed25519SignatureSize]), nil
}

var (
	_ crypto.Signer   = (*Signer)(nil)
	_ crypto.Verifier = (*Verifier)(nil)
)
