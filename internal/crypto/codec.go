// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-gesture-vault/models"
)

// Codec is the default [EnvelopeCipher]: PBKDF2-SHA256 key derivation and
// AES-256-CBC with PKCS#7 padding.
type Codec struct {
	iterations int
}

// NewCodec returns a Codec whose Encrypt uses the given iteration count.
// A non-positive value selects [DefaultIterations].
func NewCodec(iterations int) *Codec {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Codec{iterations: iterations}
}

// Iterations implements [EnvelopeCipher].
func (c *Codec) Iterations() int {
	return c.iterations
}

// Encrypt implements [EnvelopeCipher]. A fresh 32-byte salt and 16-byte IV
// are generated on every call.
func (c *Codec) Encrypt(plaintext, secret string) (models.EncryptedEnvelope, error) {
	saltHex, err := RandomHex(SaltSize)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("generate salt: %w", err)
	}
	key := DeriveKey(secret, saltHex, c.iterations)
	defer memguard.WipeBytes(key)
	return SealWithKey([]byte(plaintext), key, saltHex)
}

// DecryptWith implements [EnvelopeCipher].
func (c *Codec) DecryptWith(envelope models.EncryptedEnvelope, secret string, iterations int) (string, error) {
	if !envelope.Complete() || iterations <= 0 {
		return "", ErrDecryption
	}
	key := DeriveKey(secret, envelope.Salt, iterations)
	defer memguard.WipeBytes(key)

	plain, err := OpenWithKey(envelope, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Decrypt opens envelope with the codec's own iteration count.
func (c *Codec) Decrypt(envelope models.EncryptedEnvelope, secret string) (string, error) {
	return c.DecryptWith(envelope, secret, c.iterations)
}

// SealWithKey encrypts plaintext under an already derived key. saltHex is
// recorded in the envelope as-is; the IV is generated here.
func SealWithKey(plaintext, key []byte, saltHex string) (models.EncryptedEnvelope, error) {
	iv, err := RandomBytes(IVSize)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("generate iv: %w", err)
	}

	ct, err := sealCBC(plaintext, key, iv)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("encrypt payload: %w", err)
	}

	return models.EncryptedEnvelope{
		Data: base64.StdEncoding.EncodeToString(ct),
		IV:   hex.EncodeToString(iv),
		Salt: saltHex,
	}, nil
}

// OpenWithKey decrypts envelope under an already derived key. It fails with
// [ErrDecryption] on a malformed envelope, broken padding, an empty result
// or a result that is not valid UTF-8.
func OpenWithKey(envelope models.EncryptedEnvelope, key []byte) ([]byte, error) {
	ct, err := base64.StdEncoding.DecodeString(envelope.Data)
	if err != nil {
		return nil, ErrDecryption
	}
	iv, err := hex.DecodeString(envelope.IV)
	if err != nil {
		return nil, ErrDecryption
	}

	plain, err := openCBC(ct, key, iv)
	if err != nil {
		return nil, ErrDecryption
	}
	if len(plain) == 0 || !utf8.Valid(plain) {
		return nil, ErrDecryption
	}
	return plain, nil
}
