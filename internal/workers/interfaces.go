// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package workers manages the client's background workers.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one unit.
package workers

import "context"

// Worker is a background process with an explicit lifetime.
//
// Start must not block; the worker runs until Stop is called or ctx is
// cancelled. Stop blocks until the worker has fully terminated.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
