// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package server runs the client's optional operational HTTP server next to
// the terminal UI and stops it gracefully when the client exits.
package server
