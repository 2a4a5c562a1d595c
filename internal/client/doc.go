// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the record services, the background refresh
// worker and the optional ops server into a single process lifecycle.
package client
