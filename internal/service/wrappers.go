// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// EntryServiceWrapper decorates an EntryService.
type EntryServiceWrapper interface {
	EntryService
	Wrap(EntryService) EntryService
}
