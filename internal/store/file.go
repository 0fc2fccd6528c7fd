// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/go-gesture-vault/internal/logger"
	"github.com/MKhiriev/go-gesture-vault/internal/utils"
)

// fileSlotStorage keeps every slot in a single JSON document on disk. The
// whole document is rewritten through a temporary file and an atomic rename
// on each mutation.
type fileSlotStorage struct {
	path   string
	logger *logger.Logger

	mu    sync.RWMutex
	slots map[string]string
}

type filePersistedState struct {
	Slots map[string]string `json:"slots"`
}

// NewFileSlotStorage opens (or lazily creates) the JSON slot file at path.
func NewFileSlotStorage(path string, log *logger.Logger) (SlotStorage, error) {
	s := &fileSlotStorage{
		path:   path,
		logger: log,
		slots:  make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSlotStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read slot file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode slot file: %w", err)
	}
	if st.Slots != nil {
		s.slots = st.Slots
	}
	return nil
}

func (s *fileSlotStorage) persist() error {
	payload, err := json.MarshalIndent(filePersistedState{Slots: s.slots}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot file: %w", err)
	}
	if err = utils.WriteFileAtomic(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("persist slot file: %w", err)
	}
	return nil
}

func (s *fileSlotStorage) GetSlot(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *fileSlotStorage) SetSlot(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.slots[key]
	s.slots[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.slots[key] = prev
		} else {
			delete(s.slots, key)
		}
		s.logger.Err(err).Str("func", "fileSlotStorage.SetSlot").Str("slot", key).Msg("failed to persist slot")
		return err
	}
	return nil
}

func (s *fileSlotStorage) RemoveSlot(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.slots[key]
	if !existed {
		return nil
	}
	delete(s.slots, key)
	if err := s.persist(); err != nil {
		s.slots[key] = prev
		s.logger.Err(err).Str("func", "fileSlotStorage.RemoveSlot").Str("slot", key).Msg("failed to persist slot removal")
		return err
	}
	return nil
}

func (s *fileSlotStorage) ListSlots(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return matchPrefix(s.slots, prefix), nil
}

func (s *fileSlotStorage) Close() error {
	return nil
}
