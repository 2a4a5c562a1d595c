// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package utils provides general-purpose helpers shared by the client
// packages: keyed hashing for request integrity headers, the HTTP client,
// session token parsing, record key generation, and JSON response writing.
package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests using a pool of reusable hash
// instances.
type Hasher struct {
	pool sync.Pool
}

// NewHasher creates a Hasher whose pooled instances are keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	header := h.SumHex(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum computes an HMAC-SHA256 digest over data.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func (h *Hasher) Sum(data []byte) []byte {
	hasher := h.pool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write(data)
	sum := hasher.Sum(nil)

	hasher.Reset()
	h.pool.Put(hasher)

	return sum
}

// SumHex returns the hex-encoded HMAC-SHA256 digest of data.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. A new HMAC instance is created on each call.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
