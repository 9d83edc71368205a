// Package signing ties the input resolver, key loading and the algorithm
// backends together into sign, verify and generate operations.
package signing

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/crypto/keyed"
	"github.com/mrz1836/sigil/internal/crypto/native"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/input"
	"github.com/mrz1836/sigil/internal/keygen"
)

// Engine runs signing operations. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	keygen keygen.Options
}

// Option configures an Engine.
type Option func(*Engine)

// WithKeygenOptions sets the options passed to key generation.
func WithKeygenOptions(opts keygen.Options) Option {
	return func(e *Engine) {
		e.keygen = opts
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func backendFor(alg crypto.Algorithm) (crypto.Backend, error) {
	switch alg {
	case crypto.AlgorithmBlake3:
		return keyed.Backend{}, nil
	case crypto.AlgorithmEd25519:
		return native.Backend{}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "%q", string(alg))
	}
}

// Sign reads the input designated by in ("-" for stdin), signs it with the key
// at keyPath and returns the base64url signature.
// For ed25519 keyPath must hold the private seed.
func (e *Engine) Sign(ctx context.Context, in, keyPath string, alg crypto.Algorithm) (string, error) {
	backend, err := backendFor(alg)
	if err != nil {
		return "", err
	}

	r, err := input.Open(in)
	if err != nil {
		return "", err
	}
	defer closeInput(ctx, r)

	signer, err := backend.LoadSigner(keyPath)
	if err != nil {
		return "", err
	}

	sig, err := signer.Sign(ctx, r)
	if err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().
		Str("algorithm", alg.String()).
		Str("input", in).
		Int("signature_bytes", len(sig)).
		Msg("input signed")
	return EncodeSignature(sig), nil
}

// Verify checks the base64url signature encoded against the input designated
// by in. A mismatch returns false with a nil error.
// For ed25519 keyPath must hold the public key.
func (e *Engine) Verify(ctx context.Context, in, keyPath string, alg crypto.Algorithm, encoded string) (bool, error) {
	backend, err := backendFor(alg)
	if err != nil {
		return false, err
	}

	sig, err := DecodeSignature(encoded)
	if err != nil {
		return false, err
	}

	r, err := input.Open(in)
	if err != nil {
		return false, err
	}
	defer closeInput(ctx, r)

	verifier, err := backend.LoadVerifier(keyPath)
	if err != nil {
		return false, err
	}

	ok, err := verifier.Verify(ctx, r, sig)
	if err != nil {
		return false, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("algorithm", alg.String()).
		Str("input", in).
		Bool("valid", ok).
		Msg("signature verified")
	return ok, nil
}

// Generate returns fresh key material for alg. See keygen.Generate for the
// artifact layout.
func (e *Engine) Generate(ctx context.Context, alg crypto.Algorithm) ([][]byte, error) {
	if _, err := backendFor(alg); err != nil {
		return nil, err
	}
	return keygen.Generate(ctx, alg, e.keygen)
}

func closeInput(ctx context.Context, r io.Closer) {
	if err := r.Close(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close input")
	}
}
