// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package adapter provides transport-layer abstractions for the external
// collaborators of the GeneTree-Z client: the ledger gateway that stores
// family records and the FHE relayer that encrypts values and produces
// verifiable decryptions.
//
// The service layer depends only on the interfaces declared here. The
// package ships HTTP/REST implementations of both collaborators
// ([NewLedgerAdapter], [NewRelayerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// bodies by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUserRejected] when the wallet
// owner declines to sign, [ErrReverted] when the ledger rejects a
// transaction).
package adapter

import (
	"context"

	"github.com/jsdr97/GeneTree-Z/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerReader exposes the read-only view of the ledger.
type LedgerReader interface {
	// ListRecordKeys returns every record key known to the ledger in ledger
	// order.
	ListRecordKeys(ctx context.Context) ([]models.RecordKey, error)

	// GetRecord returns the public data of one record. The ciphertext handle
	// is not populated; use GetCiphertextHandle. Returns [ErrNotFound]
	// (wrapped) for an unknown key.
	GetRecord(ctx context.Context, key models.RecordKey) (models.Record, error)

	// GetCiphertextHandle returns the handle of the record's encrypted value.
	GetCiphertextHandle(ctx context.Context, key models.RecordKey) (models.CiphertextHandle, error)
}

// LedgerSigner exposes the state-changing view of the ledger. Every call is
// signed on behalf of the account bound by SetSessionToken.
type LedgerSigner interface {
	// SetSessionToken binds the signer session used for subsequent calls.
	// An empty token unbinds it.
	SetSessionToken(token string)

	// CreateRecord submits a record creation transaction. Returns
	// [ErrUserRejected] (wrapped) if the account owner declined to sign.
	CreateRecord(ctx context.Context, tx models.CreateRecordTx) (Transaction, error)

	// SubmitVerification submits the decryption proof for the record's
	// ciphertext. The ledger marks the record verified once the transaction
	// is confirmed, or rejects it if the record is already verified.
	SubmitVerification(ctx context.Context, key models.RecordKey, encodedClearValues, proof models.HexBytes) (Transaction, error)
}

// LedgerGateway combines the read and signer views of the ledger.
type LedgerGateway interface {
	LedgerReader
	LedgerSigner
}

// Transaction is a submitted ledger transaction awaiting finality.
type Transaction interface {
	// Hash returns the transaction hash assigned on submission.
	Hash() string

	// Wait blocks until the transaction is final or ctx is done. A reverted
	// transaction yields its receipt together with [ErrReverted] (wrapped).
	Wait(ctx context.Context) (models.Receipt, error)
}

// EncryptionClient produces ciphertexts bound to a contract and a user.
type EncryptionClient interface {
	// Init fetches the FHE key material. It must succeed before Encrypt.
	Init(ctx context.Context) error

	// Encrypt encrypts value for use by contract on behalf of user and
	// returns the ciphertext handle together with its input proof.
	Encrypt(ctx context.Context, contract, user models.Address, value int64) (models.EncryptedInput, error)
}

// ProofSubmitter publishes a decryption proof to the ledger. It is supplied
// by the caller of [DecryptionVerifier.RequestAndVerify] and bound to the
// record being disclosed.
type ProofSubmitter interface {
	SubmitProof(ctx context.Context, encodedClearValues, proof models.HexBytes) (Transaction, error)
}

// DecryptionVerifier requests a public decryption of ciphertext handles and
// hands the resulting proof to a [ProofSubmitter].
type DecryptionVerifier interface {
	// RequestAndVerify decrypts handles for contract, invokes submit with the
	// encoded clear values and proof, and returns the clear values keyed by
	// handle. An error from submit is returned wrapped.
	RequestAndVerify(ctx context.Context, handles []models.CiphertextHandle, contract models.Address, submit ProofSubmitter) (models.DecryptionResult, error)
}
