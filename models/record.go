// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordKeyPrefix is prepended to every business key written to the ledger.
const RecordKeyPrefix = "member-"

// RecordKey is the ledger-level unique identifier of a family member record.
type RecordKey string

// NewRecordKey returns a collision-resistant key of the form member-<uuidv7>.
func NewRecordKey() RecordKey {
	id, err := uuid.NewV7()
	if err != nil {
		return RecordKey(RecordKeyPrefix + uuid.NewString())
	}
	return RecordKey(RecordKeyPrefix + id.String())
}

// String implements fmt.Stringer.
func (k RecordKey) String() string {
	return string(k)
}

// CreatedAtMillis extracts the creation time encoded in the key.
//
// Two encodings are understood: the legacy member-<unix millis> form and the
// member-<uuidv7> form, whose first 48 bits carry unix milliseconds. ok is
// false for any other key.
func (k RecordKey) CreatedAtMillis() (millis int64, ok bool) {
	suffix, found := strings.CutPrefix(string(k), RecordKeyPrefix)
	if !found || suffix == "" {
		return 0, false
	}

	if n, err := strconv.ParseInt(suffix, 10, 64); err == nil && n > 0 {
		return n, true
	}

	id, err := uuid.Parse(suffix)
	if err != nil || id.Version() != 7 {
		return 0, false
	}
	sec, nsec := id.Time().UnixTime()
	return sec*1000 + nsec/int64(time.Millisecond), true
}

// Record is a family member's genetic entry mirrored from the ledger.
//
// A record is either sealed (IsVerified == false, DisclosedValue meaningless)
// or disclosed (IsVerified == true, DisclosedValue final). The transition is
// one-way and happens only on the ledger.
type Record struct {
	// ID is a numeric identifier derived from the creation time, see DeriveID.
	ID int64 `json:"id"`
	// Key is the ledger business key.
	Key RecordKey `json:"business_key"`
	// DisplayName is the owner-supplied label.
	DisplayName string `json:"name"`
	// PublicRelationship is the cleartext relationship strength (1-10).
	PublicRelationship int64 `json:"public_value1"`
	// PublicValue2 is a protocol-reserved field, always zero for records
	// created by this client.
	PublicValue2 int64 `json:"public_value2"`
	// Description is the protocol-fixed label stored with the record.
	Description string `json:"description"`
	// CreatedAt is the ledger-assigned creation time.
	CreatedAt time.Time `json:"created_at"`
	// Creator is the account that created the record.
	Creator Address `json:"creator"`
	// IsVerified is true once a decryption-verification transaction succeeded.
	IsVerified bool `json:"is_verified"`
	// DisclosedValue is the on-chain cleartext, meaningful only when IsVerified.
	DisclosedValue int64 `json:"decrypted_value"`
	// EncryptedValueHandle references the ciphertext; it is fetched lazily
	// and is empty in listings.
	EncryptedValueHandle CiphertextHandle `json:"-"`
}

// IsSealed reports whether the record's value is still encrypted on the ledger.
func (r Record) IsSealed() bool {
	return !r.IsVerified
}

// LedgerValue returns the ledger-confirmed cleartext, if any.
func (r Record) LedgerValue() (int64, bool) {
	if !r.IsVerified {
		return 0, false
	}
	return r.DisclosedValue, true
}

// DeriveID computes ID from the key, falling back to CreatedAt.
func (r Record) DeriveID() int64 {
	if ms, ok := r.Key.CreatedAtMillis(); ok {
		return ms
	}
	return r.CreatedAt.UnixMilli()
}

// CreateInput is the owner-supplied form data for a new record.
type CreateInput struct {
	Name         string
	Relationship int64
	HealthScore  int64
}
