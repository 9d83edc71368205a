// Package keygen produces fresh key material for each signing algorithm.
// It has no side effects; writing keys to disk is the keystore's job.
package keygen

import (
	"context"
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/crypto/keyed"
	"github.com/mrz1836/sigil/internal/crypto/native"
	"github.com/mrz1836/sigil/internal/ctxutil"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/genpass"
)

// Options tunes key generation.
type Options struct {
	// PasswordDerived makes blake3 keys a 32-character printable password
	// instead of 32 uniform random bytes. The key space is much smaller.
	PasswordDerived bool

	// Rand is the randomness source. Nil means crypto/rand.
	Rand io.Reader
}

// Generate returns the artifacts for alg:
//   - blake3: one 32-byte secret key
//   - ed25519: the 32-byte public key followed by the 32-byte private seed
func Generate(ctx context.Context, alg crypto.Algorithm, opts Options) ([][]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	src := opts.Rand
	if src == nil {
		src = rand.Reader
	}
	log := zerolog.Ctx(ctx)

	switch alg {
	case crypto.AlgorithmBlake3:
		if opts.PasswordDerived {
			pw, err := genpass.Generate(genpass.Options{
				Length: constants.KeySize,
				Upper:  true,
				Lower:  true,
				Number: true,
				Symbol: true,
				Rand:   src,
			})
			if err != nil {
				return nil, err
			}
			log.Debug().Str("algorithm", alg.String()).Bool("password_derived", true).Msg("key generated")
			return [][]byte{[]byte(pw)}, nil
		}
		key, err := keyed.GenerateKey(src)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("algorithm", alg.String()).Msg("key generated")
		return [][]byte{key.Bytes()}, nil

	case crypto.AlgorithmEd25519:
		pub, seed, err := native.GenerateKeyPair(src)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("algorithm", alg.String()).Msg("key pair generated")
		return [][]byte{pub.Bytes(), seed.Bytes()}, nil

	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "%q", string(alg))
	}
}
