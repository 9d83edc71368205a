package signing

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/input"
	"github.com/mrz1836/sigil/internal/keygen"
	"github.com/mrz1836/sigil/internal/testutil"
)

type keyFiles struct {
	signKey   string
	verifyKey string
}

func generateKeys(t *testing.T, e *Engine, alg crypto.Algorithm) keyFiles {
	t.Helper()
	artifacts, err := e.Generate(context.Background(), alg)
	require.NoError(t, err)

	switch alg {
	case crypto.AlgorithmEd25519:
		return keyFiles{
			signKey:   testutil.WriteFile(t, "ed25519.sk", artifacts[1]),
			verifyKey: testutil.WriteFile(t, "ed25519.pk", artifacts[0]),
		}
	default:
		path := testutil.WriteFile(t, "blake3.txt", artifacts[0])
		return keyFiles{signKey: path, verifyKey: path}
	}
}

func TestEngine_RoundTrip(t *testing.T) {
	ctx := context.Background()
	e := NewEngine()
	data := testutil.WriteFile(t, "data.txt", []byte("hello world"))
	other := testutil.WriteFile(t, "other.txt", []byte("hello!"))

	for _, alg := range crypto.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			keys := generateKeys(t, e, alg)

			encoded, err := e.Sign(ctx, data, keys.signKey, alg)
			require.NoError(t, err)
			assert.NotContains(t, encoded, "=")
			assert.NotContains(t, encoded, "+")
			assert.NotContains(t, encoded, "/")

			sig, err := DecodeSignature(encoded)
			require.NoError(t, err)
			assert.Len(t, sig, alg.SignatureSize())

			ok, err := e.Verify(ctx, data, keys.verifyKey, alg, encoded)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = e.Verify(ctx, other, keys.verifyKey, alg, encoded)
			require.NoError(t, err, "a mismatch is not an error")
			assert.False(t, ok)
		})
	}
}

func TestEngine_Blake3Deterministic(t *testing.T) {
	ctx := context.Background()
	e := NewEngine()
	key := testutil.WriteFile(t, "blake3.txt", testutil.FixedKey(7))
	data := testutil.WriteFile(t, "data.txt", []byte("same bytes"))

	a, err := e.Sign(ctx, data, key, crypto.AlgorithmBlake3)
	require.NoError(t, err)
	b, err := e.Sign(ctx, data, key, crypto.AlgorithmBlake3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEngine_KeyTruncation(t *testing.T) {
	ctx := context.Background()
	e := NewEngine()
	data := testutil.WriteFile(t, "data.txt", []byte("payload"))

	exact := testutil.WriteFile(t, "exact.txt", testutil.FixedKey(1))
	longer := testutil.WriteFile(t, "longer.txt", append(testutil.FixedKey(1), '\n'))

	a, err := e.Sign(ctx, data, exact, crypto.AlgorithmBlake3)
	require.NoError(t, err)
	b, err := e.Sign(ctx, data, longer, crypto.AlgorithmBlake3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEngine_Stdin(t *testing.T) { //nolint:paralleltest // replaces input.Stdin
	ctx := context.Background()
	e := NewEngine()
	key := testutil.WriteFile(t, "blake3.txt", testutil.FixedKey(1))
	file := testutil.WriteFile(t, "data.txt", []byte("piped"))

	orig := input.Stdin
	t.Cleanup(func() { input.Stdin = orig })
	input.Stdin = strings.NewReader("piped")

	fromStdin, err := e.Sign(ctx, "-", key, crypto.AlgorithmBlake3)
	require.NoError(t, err)
	fromFile, err := e.Sign(ctx, file, key, crypto.AlgorithmBlake3)
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromStdin)
}

func TestEngine_Errors(t *testing.T) {
	ctx := context.Background()
	e := NewEngine()
	dir := t.TempDir()
	data := testutil.WriteFile(t, "data.txt", []byte("hello world"))
	blake := testutil.WriteFile(t, "blake3.txt", testutil.FixedKey(1))
	short := testutil.WriteFile(t, "short.txt", []byte("too short"))
	ed := generateKeys(t, e, crypto.AlgorithmEd25519)
	missing := filepath.Join(dir, "missing")

	validSig, err := e.Sign(ctx, data, blake, crypto.AlgorithmBlake3)
	require.NoError(t, err)

	t.Run("unknown algorithm on sign comes before io", func(t *testing.T) {
		_, err := e.Sign(ctx, missing, missing, crypto.Algorithm("rsa"))
		require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("unknown algorithm on verify comes before decode", func(t *testing.T) {
		_, err := e.Verify(ctx, missing, missing, crypto.Algorithm(""), "!!!")
		require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	})

	t.Run("unknown algorithm on generate", func(t *testing.T) {
		_, err := e.Generate(ctx, crypto.Algorithm("rsa"))
		require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := e.Sign(ctx, missing, blake, crypto.AlgorithmBlake3)
		require.ErrorIs(t, err, errors.ErrIO)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := e.Sign(ctx, data, missing, crypto.AlgorithmBlake3)
		require.ErrorIs(t, err, errors.ErrIO)
	})

	t.Run("short key", func(t *testing.T) {
		_, err := e.Sign(ctx, data, short, crypto.AlgorithmEd25519)
		require.ErrorIs(t, err, errors.ErrKeyFormat)
	})

	t.Run("signature with padding", func(t *testing.T) {
		_, err := e.Verify(ctx, data, blake, crypto.AlgorithmBlake3, validSig+"=")
		require.ErrorIs(t, err, errors.ErrDecode)
	})

	t.Run("signature in standard alphabet", func(t *testing.T) {
		_, err := e.Verify(ctx, data, blake, crypto.AlgorithmBlake3, "ab+/cd")
		require.ErrorIs(t, err, errors.ErrDecode)
	})

	t.Run("ed25519 signature too short", func(t *testing.T) {
		_, err := e.Verify(ctx, data, ed.verifyKey, crypto.AlgorithmEd25519, EncodeSignature(make([]byte, 63)))
		require.ErrorIs(t, err, errors.ErrSignatureFormat)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("blake3 signature of wrong length is false", func(t *testing.T) {
		ok, err := e.Verify(ctx, data, blake, crypto.AlgorithmBlake3, EncodeSignature([]byte{1, 2, 3}))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("verify with wrong blake3 key is false", func(t *testing.T) {
		otherKey := testutil.WriteFile(t, "other.txt", testutil.FixedKey(2))
		ok, err := e.Verify(ctx, data, otherKey, crypto.AlgorithmBlake3, validSig)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestEngine_GenerateWithPasswordKeys(t *testing.T) {
	e := NewEngine(WithKeygenOptions(keygen.Options{PasswordDerived: true}))
	artifacts, err := e.Generate(context.Background(), crypto.AlgorithmBlake3)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Len(t, artifacts[0], 32)
}

func TestEngine_Concurrent(t *testing.T) {
	ctx := context.Background()
	e := NewEngine()
	keys := generateKeys(t, e, crypto.AlgorithmEd25519)
	data := testutil.WriteFile(t, "data.txt", []byte("concurrent"))

	want, err := e.Sign(ctx, data, keys.signKey, crypto.AlgorithmEd25519)
	require.NoError(t, err)

	g, gctx := errgroup.WithContext(ctx)
	for range 8 {
		g.Go(func() error {
			got, err := e.Sign(gctx, data, keys.signKey, crypto.AlgorithmEd25519)
			if err != nil {
				return err
			}
			if got != want {
				return fmt.Errorf("signature mismatch: %s != %s", got, want)
			}
			ok, err := e.Verify(gctx, data, keys.verifyKey, crypto.AlgorithmEd25519, got)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("signature did not verify")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDecodeSignature(t *testing.T) {
	raw := []byte{0xfb, 0xff, 0x00, 0x10}
	encoded := EncodeSignature(raw)
	assert.Equal(t, "-_8AEA", encoded)

	got, err := DecodeSignature(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	_, err = DecodeSignature("not base64!")
	require.ErrorIs(t, err, errors.ErrDecode)
}
