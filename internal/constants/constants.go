// Package constants provides centralized constant values used throughout sigil.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Key material and signature sizes.
const (
	// KeySize is the number of significant bytes in every key file.
	// Extra trailing bytes are ignored; fewer bytes are rejected.
	KeySize = 32

	// Blake3SignatureSize is the size of a keyed BLAKE3 digest.
	Blake3SignatureSize = 32

	// Ed25519SignatureSize is the size of an Ed25519 signature.
	Ed25519SignatureSize = 64
)

// Input designators.
const (
	// StdinDesignator is the reserved input name meaning "read standard input".
	StdinDesignator = "-"
)

// Algorithm names accepted by --format.
const (
	// AlgorithmBlake3 selects the BLAKE3 keyed hash backend.
	AlgorithmBlake3 = "blake3"

	// AlgorithmEd25519 selects the Ed25519 signature backend.
	AlgorithmEd25519 = "ed25519"

	// DefaultAlgorithm is used when no format is configured.
	DefaultAlgorithm = AlgorithmBlake3
)

// Generated key file names, relative to the output directory.
const (
	// Blake3KeyFileName holds the single shared blake3 key.
	Blake3KeyFileName = "blake3.txt"

	// Ed25519PublicKeyFileName holds the verifying key (artifact 0).
	Ed25519PublicKeyFileName = "ed25519.pk"

	// Ed25519PrivateKeyFileName holds the signing seed (artifact 1).
	Ed25519PrivateKeyFileName = "ed25519.sk"

	// KeyDirLockFileName guards concurrent writers to one key directory.
	KeyDirLockFileName = ".sigil.lock"
)

// Password generator defaults.
const (
	// DefaultPasswordLength is the genpass length when none is configured.
	DefaultPasswordLength = 16

	// MinPasswordLength is the smallest accepted password length.
	MinPasswordLength = 4

	// MaxPasswordLength is the largest accepted password length.
	MaxPasswordLength = 255
)

// JWT defaults.
const (
	// DefaultJWTSecret is the HS256 secret used when none is configured.
	DefaultJWTSecret = "your-256-bit-secret"

	// DefaultJWTExpiry is the expiry applied when --exp is omitted.
	DefaultJWTExpiry = "1h"
)

// File permissions.
const (
	// KeyFilePerm is the mode for generated key files.
	KeyFilePerm = 0o600

	// DirPerm is the mode for directories sigil creates (config, logs).
	DirPerm = 0o750
)

// Timeouts.
const (
	// KeyLockTimeout bounds how long key generation waits for the directory lock.
	KeyLockTimeout = 5 * time.Second

	// KeyLockRetryInterval is the pause between lock attempts.
	KeyLockRetryInterval = 50 * time.Millisecond
)
