// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashGesture returns the lowercase hex SHA-256 digest of a canonical
// gesture string such as "0,4,8,6". The digest only verifies an unlock
// attempt; it is never used as key material.
func HashGesture(canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// VerifyGesture reports whether canonical hashes to storedHash. The
// comparison runs in constant time.
func VerifyGesture(canonical, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashGesture(canonical)), []byte(storedHash)) == 1
}
