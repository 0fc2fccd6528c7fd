// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// fakeRecords is a JSON-backed stand-in for an unlocked vault.
type fakeRecords struct {
	data map[string][]byte
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{data: make(map[string][]byte)}
}

func (f *fakeRecords) Load(_ context.Context, key string, target any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeRecords) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

type seqIDs struct {
	n int
}

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}
