// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID        = errors.New("entry id is required")
	ErrEmptySite      = errors.New("site is required")
	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrFieldTooLong   = errors.New("field value is too long")
	ErrEmptyVersion   = errors.New("backup version is required")
	ErrMissingEntries = errors.New("backup has no passwords list")
)
