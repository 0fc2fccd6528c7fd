// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"

	"github.com/MKhiriev/go-gesture-vault/models"
)

type slotKind int

const (
	slotPlaintext slotKind = iota
	slotEnvelope
)

// decodedSlot is the sum of what a raw slot can hold: an encrypted
// envelope, or a legacy plaintext JSON value.
type decodedSlot struct {
	kind      slotKind
	envelope  models.EncryptedEnvelope
	plaintext []byte
}

// decodeSlot classifies raw. A JSON object with non-empty data, iv and
// salt strings is an envelope; anything else is plaintext.
func decodeSlot(raw string) decodedSlot {
	var env models.EncryptedEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Complete() {
		return decodedSlot{kind: slotEnvelope, envelope: env}
	}
	return decodedSlot{kind: slotPlaintext, plaintext: []byte(raw)}
}

// internalIterations returns the iteration count to try with the internal
// key first, and false when the envelope is tagged as secret-derived.
func (d decodedSlot) internalIterations(current int) (int, bool) {
	tag := d.envelope.Scheme
	if tag == nil {
		return current, true
	}
	if tag.Key != models.KeySourceInternal {
		return 0, false
	}
	if tag.Iterations > 0 {
		return tag.Iterations, true
	}
	return current, true
}
