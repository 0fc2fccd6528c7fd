// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"

	"github.com/MKhiriev/go-gesture-vault/models"
)

// VersionedDecryptor opens envelopes that carry no version information by
// trying every historical iteration count, current first and legacy last.
type VersionedDecryptor struct {
	cipher     EnvelopeCipher
	iterations []int
}

// NewVersionedDecryptor builds a decryptor that tries cipher's own iteration
// count first and then each of legacy in order. Duplicates and non-positive
// values are dropped.
func NewVersionedDecryptor(cipher EnvelopeCipher, legacy ...int) *VersionedDecryptor {
	order := make([]int, 0, len(legacy)+1)
	seen := make(map[int]struct{}, len(legacy)+1)
	for _, it := range append([]int{cipher.Iterations()}, legacy...) {
		if it <= 0 {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		order = append(order, it)
	}
	return &VersionedDecryptor{cipher: cipher, iterations: order}
}

// Iterations returns the attempt order.
func (v *VersionedDecryptor) Iterations() []int {
	return append([]int(nil), v.iterations...)
}

// DecryptWithFallback implements [FallbackDecryptor].
func (v *VersionedDecryptor) DecryptWithFallback(envelope models.EncryptedEnvelope, secret string) (string, int, error) {
	var errs []error
	for _, it := range v.iterations {
		plain, err := v.cipher.DecryptWith(envelope, secret, it)
		if err == nil {
			return plain, it, nil
		}
		errs = append(errs, err)
	}
	return "", 0, errors.Join(append([]error{ErrAllVariantsExhausted}, errs...)...)
}
