// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is returned for a wrong key, broken padding, malformed
	// envelope fields or a plaintext that is not valid text. The causes are
	// deliberately indistinguishable.
	ErrDecryption = errors.New("decryption failed: invalid key or corrupted data")

	// ErrAllVariantsExhausted is returned by [VersionedDecryptor] when no
	// known parameter set opened the envelope.
	ErrAllVariantsExhausted = errors.New("no known key derivation variant could decrypt the data")

	// ErrInvalidKey is returned when a raw AES key has the wrong size.
	ErrInvalidKey = errors.New("invalid key length")
)
