// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package handler

import "errors"

var (
	// ErrRecordNotFound is returned when the requested key is not in the
	// current snapshot.
	ErrRecordNotFound = errors.New("record not found")
)
