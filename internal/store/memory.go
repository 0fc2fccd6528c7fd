// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// memorySlotStorage keeps slots in process memory. It backs the "memory"
// driver and most tests.
type memorySlotStorage struct {
	mu     sync.RWMutex
	slots  map[string]string
	closed bool
}

// NewMemorySlotStorage returns an empty in-memory [SlotStorage].
func NewMemorySlotStorage() SlotStorage {
	return &memorySlotStorage{slots: make(map[string]string)}
}

func (m *memorySlotStorage) GetSlot(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrStorageClosed
	}
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *memorySlotStorage) SetSlot(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStorageClosed
	}
	m.slots[key] = value
	return nil
}

func (m *memorySlotStorage) RemoveSlot(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStorageClosed
	}
	delete(m.slots, key)
	return nil
}

func (m *memorySlotStorage) ListSlots(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrStorageClosed
	}
	return matchPrefix(m.slots, prefix), nil
}

func (m *memorySlotStorage) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

func matchPrefix(slots map[string]string, prefix string) []string {
	keys := make([]string, 0, len(slots))
	for k := range slots {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
