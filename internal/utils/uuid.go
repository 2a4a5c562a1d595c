// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package utils

import "github.com/jsdr97/GeneTree-Z/models"

// RecordKeyGenerator produces fresh UUIDv7-based record keys.
type RecordKeyGenerator struct{}

func NewRecordKeyGenerator() *RecordKeyGenerator {
	return &RecordKeyGenerator{}
}

func (g *RecordKeyGenerator) Generate() models.RecordKey {
	return models.NewRecordKey()
}
