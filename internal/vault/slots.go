// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

// SlotPrefix namespaces every slot the engine owns.
const SlotPrefix = "securepass_"

// Logical record keys. The persisted slot is SlotPrefix + key.
const (
	KeyGestureHash    = "gesture_hash"
	KeyInternalKey    = "internal_key"
	KeyMarker         = "test"
	KeyPasswords      = "passwords"
	KeyLastImportMode = "last_import_mode"
)

// markerPayload is the value encrypted into the verification marker.
const markerPayload = "securepass"

func slotKey(key string) string {
	return SlotPrefix + key
}

func isReserved(key string) bool {
	switch key {
	case KeyGestureHash, KeyInternalKey, KeyMarker:
		return true
	}
	return false
}
