// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	// IVSize is the AES block size used for CBC initialisation vectors.
	IVSize = 16
	// SaltSize is the number of random salt bytes per envelope.
	SaltSize = 32
	// InternalKeySize is the number of random bytes in the device key.
	InternalKeySize = 32
)

// RandomBytes reads n bytes from the OS CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// RandomHex returns n random bytes encoded as lowercase hex.
func RandomHex(n int) (string, error) {
	b, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateInternalKey returns a fresh 256-bit device key in hex form.
func GenerateInternalKey() (string, error) {
	return RandomHex(InternalKeySize)
}
