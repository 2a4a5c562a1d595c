// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package handler exposes the client's read-only operational HTTP surface:
// Prometheus metrics, a health summary of the record snapshot, the build
// version and the public record listing. Nothing served here ever includes a
// locally decrypted value.
package handler
