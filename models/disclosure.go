// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package models

import "time"

// ProvisionalValue is a cleartext obtained locally by running the
// decryption-verification flow. It is not authoritative: the ledger's
// DisclosedValue supersedes it, and it must never be persisted.
type ProvisionalValue struct {
	Key        RecordKey
	Handle     CiphertextHandle
	Value      int64
	ObtainedAt time.Time
}

// DisclosureSource tells how a disclosure call resolved.
type DisclosureSource int

const (
	// SourceLedger means the record was already verified and the value was
	// read from the ledger without any decryption request.
	SourceLedger DisclosureSource = iota + 1
	// SourceDecryption means this call ran decryption and verification.
	SourceDecryption
	// SourceRace means a concurrent disclosure won; the caller should re-read
	// the now verified record.
	SourceRace
)

// DisclosureResult is returned by a successful disclosure call.
type DisclosureResult struct {
	Key    RecordKey
	Source DisclosureSource
	// Value is meaningful when Known is true.
	Value int64
	Known bool
	// provisional is set only for SourceDecryption.
	provisional *ProvisionalValue
}

// LedgerDisclosure builds the fast-path result.
func LedgerDisclosure(key RecordKey, value int64) DisclosureResult {
	return DisclosureResult{Key: key, Source: SourceLedger, Value: value, Known: true}
}

// DecryptedDisclosure builds the result of a full decryption run.
func DecryptedDisclosure(p ProvisionalValue) DisclosureResult {
	return DisclosureResult{Key: p.Key, Source: SourceDecryption, Value: p.Value, Known: true, provisional: &p}
}

// RacedDisclosure builds the result for a disclosure that lost the race.
func RacedDisclosure(key RecordKey) DisclosureResult {
	return DisclosureResult{Key: key, Source: SourceRace}
}

// Provisional returns the locally decrypted value, if this call produced one.
func (d DisclosureResult) Provisional() (ProvisionalValue, bool) {
	if d.provisional == nil {
		return ProvisionalValue{}, false
	}
	return *d.provisional, true
}
