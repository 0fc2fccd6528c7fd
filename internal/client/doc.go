// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault application runtime.
//
// It wires the slot storage, the secure storage engine, the gesture
// authenticator, the entry and backup services, the auto-lock worker and the
// terminal UI into a single process lifecycle.
package client
