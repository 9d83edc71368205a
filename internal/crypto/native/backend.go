package native

import (
	"crypto/ed25519"
	"io"

	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
)

// Backend loads Ed25519 keys: the private seed file for signing and the public
// key file for verifying.
type Backend struct{}

// Algorithm implements crypto.Backend.
func (Backend) Algorithm() crypto.Algorithm {
	return crypto.AlgorithmEd25519
}

// LoadSigner implements crypto.Backend. The file must hold a 32-byte seed.
func (Backend) LoadSigner(path string) (crypto.Signer, error) {
	seed, err := crypto.LoadKey(path)
	if err != nil {
		return nil, err
	}
	return NewSigner(seed), nil
}

// LoadVerifier implements crypto.Backend. The file must hold a 32-byte public key.
func (Backend) LoadVerifier(path string) (crypto.Verifier, error) {
	pub, err := crypto.LoadKey(path)
	if err != nil {
		return nil, err
	}
	v, err := NewVerifier(pub)
	if err != nil {
		return nil, errors.Wrapf(err, "key file %s", path)
	}
	return v, nil
}

// GenerateKeyPair creates a fresh key pair from rand.
// It returns the public key first and the private seed second.
func GenerateKeyPair(rand io.Reader) (pub, seed crypto.Key, err error) {
	_, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return crypto.Key{}, crypto.Key{}, errors.Join(errors.ErrEntropy, err, "generating ed25519 key")
	}
	s := &Signer{privKey: priv}
	return s.PublicKey(), s.Seed(), nil
}

var _ crypto.Backend = Backend{}
