// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the derived key length (AES-256).
	KeySize = 32

	// DefaultIterations is the work factor used for new envelopes.
	DefaultIterations = 5000

	// LegacyIterations is the work factor of vaults and backups written by
	// the first releases.
	LegacyIterations = 100000
)

// DeriveKey turns secret into a 256-bit key with PBKDF2-HMAC-SHA256.
//
// The salt is consumed in its hex text form, i.e. the ASCII bytes of saltHex
// rather than the decoded bytes. Existing vaults were written that way and
// the derivation must stay bit-compatible with them.
//
// The function is deterministic: the same (secret, saltHex, iterations)
// always yields the same key.
func DeriveKey(secret, saltHex string, iterations int) []byte {
	return pbkdf2.Key([]byte(secret), []byte(saltHex), iterations, KeySize, sha256.New)
}
