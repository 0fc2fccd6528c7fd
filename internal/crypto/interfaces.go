// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-gesture-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// EnvelopeCipher seals and opens [models.EncryptedEnvelope] values with a key
// derived from a secret string.
//
// Schema:
//
//	salt, iv  = fresh random values                  (per call)
//	key       = PBKDF2-SHA256(secret, salt, iter)    (KeyDerivation)
//	data      = AES-256-CBC(key, iv, PKCS7(plain))   (CipherCodec)
type EnvelopeCipher interface {
	// Encrypt seals plaintext under a key derived from secret with the
	// cipher's current iteration count. The returned envelope carries no
	// scheme tag; callers that know the key source attach one.
	Encrypt(plaintext, secret string) (models.EncryptedEnvelope, error)

	// DecryptWith opens envelope with a key derived from secret using the
	// given iteration count. Every failure is reported as [ErrDecryption].
	DecryptWith(envelope models.EncryptedEnvelope, secret string, iterations int) (string, error)

	// Iterations returns the work factor used by Encrypt.
	Iterations() int
}

// FallbackDecryptor opens envelopes written under any historical parameter
// set by trying each of them in order.
type FallbackDecryptor interface {
	// DecryptWithFallback returns the plaintext and the iteration count that
	// opened it, or [ErrAllVariantsExhausted] if every attempt failed.
	DecryptWithFallback(envelope models.EncryptedEnvelope, secret string) (plaintext string, iterations int, err error)
}
