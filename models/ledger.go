// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package models

// CiphertextHandle is an opaque reference to a ciphertext held by the
// encryption system, as returned by the ledger.
type CiphertextHandle string

// EncryptedInput is the relayer's answer to an encryption request: the
// ciphertext handle bound to the target contract and user, plus a proof that
// the ciphertext is well-formed.
type EncryptedInput struct {
	Handle HexBytes `json:"handle"`
	Proof  HexBytes `json:"input_proof"`
}

// CreateRecordTx carries the arguments of the ledger's record creation
// entrypoint.
type CreateRecordTx struct {
	Key                RecordKey `json:"business_key"`
	Name               string    `json:"name"`
	EncryptedValue     HexBytes  `json:"encrypted_value"`
	InputProof         HexBytes  `json:"input_proof"`
	PublicRelationship int64     `json:"public_value1"`
	PublicValue2       int64     `json:"public_value2"`
	Description        string    `json:"description"`
}

// VerificationTx carries the arguments of the ledger's decryption
// verification entrypoint.
type VerificationTx struct {
	Key                RecordKey `json:"-"`
	EncodedClearValues HexBytes  `json:"abi_encoded_clear_values"`
	DecryptionProof    HexBytes  `json:"decryption_proof"`
}

// DecryptionResult is what a decryption-verification round produced.
// ClearValues is keyed by handle because one request may batch several.
type DecryptionResult struct {
	ClearValues        map[CiphertextHandle]int64
	EncodedClearValues HexBytes
	DecryptionProof    HexBytes
}

// TxStatus is the finality state of a submitted ledger transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxReverted  TxStatus = "reverted"
)

// Receipt describes a transaction once it left the pending state.
type Receipt struct {
	TxHash      string   `json:"tx_hash"`
	Status      TxStatus `json:"status"`
	BlockNumber uint64   `json:"block_number"`
	// RevertReason is the ledger's revert message, set when Status is
	// TxReverted.
	RevertReason string `json:"revert_reason,omitempty"`
}
