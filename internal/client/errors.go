// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package client

import "errors"

var (
	// ErrIncompleteApp is returned by NewApp when a required dependency is nil.
	ErrIncompleteApp = errors.New("client app requires config, services and ui")
)
