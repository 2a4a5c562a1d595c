// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name is too long")
	ErrInvalidRelationship = errors.New("relationship must be between 1 and 10")
	ErrInvalidHealthScore  = errors.New("health score must be a non-negative 32-bit value")
	ErrInvalidRecordKey    = errors.New("invalid record key")
	ErrInvalidAccount      = errors.New("invalid account address")
)
