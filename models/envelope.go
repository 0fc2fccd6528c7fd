// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Key sources recorded in a [SchemeTag].
const (
	// KeySourceInternal marks envelopes sealed with the device internal key.
	KeySourceInternal = "internal"
	// KeySourceSecret marks envelopes sealed directly with a user secret
	// (gesture string or backup passphrase).
	KeySourceSecret = "secret"
)

// EncryptedEnvelope is the self-describing output of a single encryption
// call. Data is base64 ciphertext, IV and Salt are lowercase hex. IV and Salt
// are fresh for every call, so two envelopes never share them even for the
// same plaintext.
//
// Scheme is optional: envelopes written by older clients carry no tag and are
// opened by trying every known parameter set in order.
type EncryptedEnvelope struct {
	Data   string     `json:"data"`
	IV     string     `json:"iv"`
	Salt   string     `json:"salt"`
	Scheme *SchemeTag `json:"scheme,omitempty"`
}

// SchemeTag records which key source and KDF work factor sealed an envelope.
type SchemeTag struct {
	Key        string `json:"key"`
	Iterations int    `json:"iter"`
}

// Complete reports whether all three mandatory envelope fields are present.
func (e EncryptedEnvelope) Complete() bool {
	return e.Data != "" && e.IV != "" && e.Salt != ""
}
