package crypto_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/testutil"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    crypto.Algorithm
		wantErr bool
	}{
		{name: "blake3", input: "blake3", want: crypto.AlgorithmBlake3},
		{name: "ed25519", input: "ed25519", want: crypto.AlgorithmEd25519},
		{name: "upper case", input: "BLAKE3", want: crypto.AlgorithmBlake3},
		{name: "mixed case with spaces", input: " Ed25519 ", want: crypto.AlgorithmEd25519},
		{name: "unknown", input: "rsa", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := crypto.ParseAlgorithm(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
				assert.False(t, got.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestAlgorithm_String(t *testing.T) {
	for _, alg := range crypto.Algorithms() {
		parsed, err := crypto.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, parsed)
		assert.Equal(t, strings.ToLower(alg.String()), alg.String())
	}
}

func TestAlgorithm_SignatureSize(t *testing.T) {
	assert.Equal(t, 32, crypto.AlgorithmBlake3.SignatureSize())
	assert.Equal(t, 64, crypto.AlgorithmEd25519.SignatureSize())
	assert.Zero(t, crypto.Algorithm("rsa").SignatureSize())
}

func TestAlgorithm_Set(t *testing.T) {
	var alg crypto.Algorithm
	require.NoError(t, alg.Set("ED25519"))
	assert.Equal(t, crypto.AlgorithmEd25519, alg)
	assert.Equal(t, "algorithm", alg.Type())

	err := alg.Set("hmac")
	require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	assert.Equal(t, crypto.AlgorithmEd25519, alg, "failed Set must not change the value")
}

func TestNewKey(t *testing.T) {
	t.Run("exactly 32 bytes", func(t *testing.T) {
		raw := testutil.FixedKey(1)
		k, err := crypto.NewKey(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, k.Bytes())
	})

	t.Run("longer input is truncated", func(t *testing.T) {
		raw := append(testutil.FixedKey(1), '\n', 'x')
		k, err := crypto.NewKey(raw)
		require.NoError(t, err)
		assert.Equal(t, raw[:32], k.Bytes())
	})

	t.Run("short input is rejected", func(t *testing.T) {
		for _, n := range []int{0, 1, 31} {
			_, err := crypto.NewKey(make([]byte, n))
			require.ErrorIs(t, err, errors.ErrKeyFormat, "len %d", n)
		}
	})

	t.Run("key is copied", func(t *testing.T) {
		raw := testutil.FixedKey(1)
		k, err := crypto.NewKey(raw)
		require.NoError(t, err)
		raw[0] = 0xFF
		assert.NotEqual(t, raw[0], k[0])
	})

	t.Run("String hides key material", func(t *testing.T) {
		k, err := crypto.NewKey(bytes.Repeat([]byte{'A'}, 32))
		require.NoError(t, err)
		assert.NotContains(t, k.String(), "AAAA")
	})
}

func TestLoadKey(t *testing.T) {
	t.Run("reads key file", func(t *testing.T) {
		path := testutil.WriteFile(t, "blake3.txt", testutil.FixedKey(7))
		k, err := crypto.LoadKey(path)
		require.NoError(t, err)
		assert.Equal(t, testutil.FixedKey(7), k.Bytes())
	})

	t.Run("short key file", func(t *testing.T) {
		path := testutil.WriteFile(t, "short.txt", []byte("too short"))
		_, err := crypto.LoadKey(path)
		require.ErrorIs(t, err, errors.ErrKeyFormat)
		assert.NotErrorIs(t, err, errors.ErrIO)
	})

	t.Run("missing key file", func(t *testing.T) {
		_, err := crypto.LoadKey(t.TempDir() + "/missing.txt")
		require.ErrorIs(t, err, errors.ErrIO)
	})
}

func TestReadInput(t *testing.T) {
	t.Run("reads everything", func(t *testing.T) {
		got, err := crypto.ReadInput(context.Background(), strings.NewReader("hello world"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello world"), got)
	})

	t.Run("read failure is an i/o error", func(t *testing.T) {
		_, err := crypto.ReadInput(context.Background(), testutil.FailingReader{})
		require.ErrorIs(t, err, errors.ErrIO)
		require.ErrorIs(t, err, testutil.ErrMockRead)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := crypto.ReadInput(ctx, strings.NewReader("x"))
		require.ErrorIs(t, err, context.Canceled)
	})
}
