package crypto

import (
	"fmt"
	"strings"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// Algorithm selects a signing backend. The set is closed: only the constants
// below are valid, and the zero value is not.
type Algorithm string

const (
	// AlgorithmBlake3 is a BLAKE3 keyed hash (MAC) with a 32-byte shared key.
	AlgorithmBlake3 Algorithm = constants.AlgorithmBlake3

	// AlgorithmEd25519 is an Ed25519 signature with 32-byte seed/public keys.
	AlgorithmEd25519 Algorithm = constants.AlgorithmEd25519
)

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBlake3, AlgorithmEd25519}
}

// ParseAlgorithm converts a case-insensitive name into an Algorithm.
// Unknown names return an error wrapping errors.ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case AlgorithmBlake3, AlgorithmEd25519:
		return alg, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s, %s)",
			errors.ErrUnknownAlgorithm, name, AlgorithmBlake3, AlgorithmEd25519)
	}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a == AlgorithmBlake3 || a == AlgorithmEd25519
}

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

// SignatureSize returns the raw signature length for a, or 0 if a is invalid.
func (a Algorithm) SignatureSize() int {
	switch a {
	case AlgorithmBlake3:
		return constants.Blake3SignatureSize
	case AlgorithmEd25519:
		return constants.Ed25519SignatureSize
	default:
		return 0
	}
}

// Set implements pflag.Value so an Algorithm can be bound directly to a flag.
func (a *Algorithm) Set(s string) error {
	alg, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

// Type implements pflag.Value.
func (a *Algorithm) Type() string {
	return "algorithm"
}
