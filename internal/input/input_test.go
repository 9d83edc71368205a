package input

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/testutil"
)

func TestOpen_File(t *testing.T) {
	path := testutil.WriteFile(t, "data.txt", []byte("hello world"))

	rc, err := Open(path)
	require.NoError(t, err)
	defer func() { assert.NoError(t, rc.Close()) }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestOpen_Stdin(t *testing.T) { //nolint:paralleltest // replaces package-level Stdin
	orig := Stdin
	t.Cleanup(func() { Stdin = orig })
	Stdin = strings.NewReader("from stdin")

	rc, err := Open("-")
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))
	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close(), "closing stdin twice is harmless")
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpen_EmptyFile(t *testing.T) {
	path := testutil.WriteFile(t, "empty", nil)

	rc, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestExists(t *testing.T) {
	file := testutil.WriteFile(t, "data.txt", []byte("x"))

	tests := []struct {
		name       string
		designator string
		want       bool
	}{
		{"stdin", "-", true},
		{"existing file", file, true},
		{"directory", t.TempDir(), false},
		{"missing", filepath.Join(t.TempDir(), "missing"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Exists(tt.designator))
		})
	}
}
