package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailingReader(t *testing.T) {
	n, err := FailingReader{}.Read(make([]byte, 8))
	assert.Zero(t, n)
	require.ErrorIs(t, err, ErrMockRead)

	_, err = FailingReader{Err: ErrMockEntropy}.Read(nil)
	require.ErrorIs(t, err, ErrMockEntropy)
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "key.bin", []byte("abc"))

	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}

func TestFixedKey(t *testing.T) {
	k := FixedKey(10)
	require.Len(t, k, 32)
	assert.Equal(t, byte(10), k[0])
	assert.Equal(t, byte(41), k[31])
	assert.Equal(t, k, FixedKey(10), "deterministic")
}
