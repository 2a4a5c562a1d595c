// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package config provides configuration loading, merging, and validation
// facilities for the GeneTree-Z client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] for the validated client runtime configuration.
package config
