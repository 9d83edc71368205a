package keyed

import (
	"io"

	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
)

// Backend loads blake3 keys. Signing and verifying use the same key file.
type Backend struct{}

// Algorithm implements crypto.Backend.
func (Backend) Algorithm() crypto.Algorithm {
	return crypto.AlgorithmBlake3
}

// LoadSigner implements crypto.Backend.
func (Backend) LoadSigner(path string) (crypto.Signer, error) {
	key, err := crypto.LoadKey(path)
	if err != nil {
		return nil, err
	}
	return New(key), nil
}

// LoadVerifier implements crypto.Backend.
func (Backend) LoadVerifier(path string) (crypto.Verifier, error) {
	key, err := crypto.LoadKey(path)
	if err != nil {
		return nil, err
	}
	return New(key), nil
}

// GenerateKey reads a uniformly random 32-byte key from rand.
func GenerateKey(rand io.Reader) (crypto.Key, error) {
	var key crypto.Key
	if _, err := io.ReadFull(rand, key[:]); err != nil {
		return crypto.Key{}, errors.Join(errors.ErrEntropy, err, "generating blake3 key")
	}
	return key, nil
}

var _ crypto.Backend = Backend{}
