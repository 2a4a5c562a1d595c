// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package store

import (
	"slices"
	"sync"
	"time"

	"github.com/jsdr97/GeneTree-Z/models"
)

// RecordSnapshot is the in-memory view of the ledger's records. It is
// replaced wholesale by each refresh and never merged; the last writer wins.
type RecordSnapshot struct {
	mu        sync.RWMutex
	records   []models.Record
	index     map[models.RecordKey]int
	updatedAt time.Time
}

// NewRecordSnapshot returns an empty snapshot.
func NewRecordSnapshot() *RecordSnapshot {
	return &RecordSnapshot{index: make(map[models.RecordKey]int)}
}

// Replace swaps in records as the new snapshot. The slice is copied.
func (s *RecordSnapshot) Replace(records []models.Record, at time.Time) {
	cp := slices.Clone(records)
	index := make(map[models.RecordKey]int, len(cp))
	for i, r := range cp {
		index[r.Key] = i
	}

	s.mu.Lock()
	s.records = cp
	s.index = index
	s.updatedAt = at
	s.mu.Unlock()
}

// Seed installs records only if the snapshot was never replaced, keeping
// UpdatedAt zero. It reports whether the records were installed.
func (s *RecordSnapshot) Seed(records []models.Record) bool {
	cp := slices.Clone(records)
	index := make(map[models.RecordKey]int, len(cp))
	for i, r := range cp {
		index[r.Key] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.updatedAt.IsZero() {
		return false
	}
	s.records = cp
	s.index = index
	return true
}

// All returns a copy of the snapshot in ledger order.
func (s *RecordSnapshot) All() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Get returns the record stored under key.
func (s *RecordSnapshot) Get(key models.RecordKey) (models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[key]
	if !ok {
		return models.Record{}, false
	}
	return s.records[i], true
}

// Len returns the number of records in the snapshot.
func (s *RecordSnapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// UpdatedAt returns when the snapshot was last replaced; zero if never.
func (s *RecordSnapshot) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
