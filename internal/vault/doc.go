// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the secure storage engine: the locked/unlocked
// lifecycle, encryption of every record under a device-local internal key,
// and migration of legacy records on first read.
//
// All values live in [store.SlotStorage] under the "securepass_" prefix.
// A slot holds either a legacy plaintext JSON value or an
// [models.EncryptedEnvelope]; [decodeSlot] tells the two apart explicitly.
package vault
