// Package genpass generates random passwords from alphabets that leave out
// visually ambiguous characters, and scores them with zxcvbn.
package genpass

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// Character classes. Upper drops I and O, lower drops l and o.
const (
	Upper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Lower  = "abcdefghijkmnpqrstuvwxyz"
	Number = "0123456789"
	Symbol = "!@#$%^&*()_"
)

// Options selects the password length and the enabled character classes.
type Options struct {
	Length int
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool

	// Rand is the randomness source. Nil means crypto/rand.
	Rand io.Reader
}

// DefaultOptions returns a 16-character password with every class enabled.
func DefaultOptions() Options {
	return Options{
		Length: constants.DefaultPasswordLength,
		Upper:  true,
		Lower:  true,
		Number: true,
		Symbol: true,
	}
}

func (o Options) classes() []string {
	var out []string
	if o.Upper {
		out = append(out, Upper)
	}
	if o.Lower {
		out = append(out, Lower)
	}
	if o.Number {
		out = append(out, Number)
	}
	if o.Symbol {
		out = append(out, Symbol)
	}
	return out
}

// Generate returns a password with at least one character from every enabled
// class, the rest drawn from their union, in shuffled order.
func Generate(opts Options) (string, error) {
	classes := opts.classes()
	switch {
	case len(classes) == 0:
		return "", fmt.Errorf("%w: no character classes enabled", errors.ErrInvalidPasswordOptions)
	case opts.Length < len(classes):
		return "", fmt.Errorf("%w: length %d is shorter than the %d enabled classes",
			errors.ErrInvalidPasswordOptions, opts.Length, len(classes))
	case opts.Length > constants.MaxPasswordLength:
		return "", fmt.Errorf("%w: length %d exceeds %d",
			errors.ErrInvalidPasswordOptions, opts.Length, constants.MaxPasswordLength)
	}

	src := opts.Rand
	if src == nil {
		src = rand.Reader
	}

	password := make([]byte, 0, opts.Length)
	var pool string
	for _, class := range classes {
		c, err := pick(src, class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		pool += class
	}
	for len(password) < opts.Length {
		c, err := pick(src, pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(src, password); err != nil {
		return "", err
	}
	return string(password), nil
}

// Strength returns the zxcvbn score of password, 0 (weakest) to 4.
func Strength(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}

func pick(src io.Reader, alphabet string) (byte, error) {
	i, err := randIndex(src, len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by src.
func shuffle(src io.Reader, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randIndex(src, i+1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func randIndex(src io.Reader, n int) (int, error) {
	v, err := rand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Join(errors.ErrEntropy, err, "drawing random index")
	}
	return int(v.Int64()), nil
}
