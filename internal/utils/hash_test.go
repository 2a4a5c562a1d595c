// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func expectedHMAC(key string, data []byte) []byte {
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	return h.Sum(nil)
}

func TestHasher_SumMatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte(`{"business_key":"member-1"}`)

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)

	require.NotEmpty(t, sum1)
	assert.Equal(t, sum1, sum2, "hash must be deterministic for the same input")
	assert.Equal(t, expectedHMAC(testHashKey, data), sum1)
}

func TestHasher_SumHex(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("payload")

	assert.Equal(t, hex.EncodeToString(expectedHMAC(testHashKey, data)), h.SumHex(data))
}

func TestHasher_DifferentKeysDiffer(t *testing.T) {
	data := []byte("payload")
	assert.NotEqual(t, NewHasher("a").Sum(data), NewHasher("b").Sum(data))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("concurrent")
	want := expectedHMAC(testHashKey, data)

	var wg sync.WaitGroup
	results := make([][]byte, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.Sum(data)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestHashString(t *testing.T) {
	got := HashString("data", testHashKey)
	assert.Equal(t, hex.EncodeToString(expectedHMAC(testHashKey, []byte("data"))), got)
	assert.Len(t, got, 64)
}
