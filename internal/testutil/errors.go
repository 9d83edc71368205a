// Package testutil provides testing utilities for sigil.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Mock errors for testing purposes.
var (
	// ErrMockRead indicates a mock reader failed (used in tests).
	ErrMockRead = errors.New("read failed")

	// ErrMockEntropy indicates a mock random source failed (used in tests).
	ErrMockEntropy = errors.New("entropy exhausted")
)

// FailingReader returns Err from every Read call.
type FailingReader struct {
	Err error
}

// Read implements io.Reader.
func (r FailingReader) Read(_ []byte) (int, error) {
	if r.Err == nil {
		return 0, ErrMockRead
	}
	return 0, r.Err
}

// WriteFile writes data to name inside a fresh temp dir and returns the full path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// FixedKey returns 32 deterministic bytes starting at seed.
func FixedKey(seed byte) []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}
