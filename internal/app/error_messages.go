// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package app contains shared application-layer constants used across the
// GeneTree-Z services and presentation.
//
// All Msg* constants are human-readable status strings shown to the record
// owner. Keeping them in one place ensures consistent wording between the
// lifecycle services and the terminal client.
package app

const (
	// MsgConnectWallet is shown when an operation needs a connected signer
	// session and none is bound.
	MsgConnectWallet = "Please connect your wallet first"

	// MsgFHEInitFailed is shown when the encryption client could not load
	// its key material after connecting.
	MsgFHEInitFailed = "FHE initialization failed. Please check your wallet connection."

	// MsgLoadFailed is shown when the record list could not be fetched.
	MsgLoadFailed = "Failed to load genetic data"
)

// Record creation.
const (
	// MsgCreating is the pending status while the value is encrypted and the
	// creation transaction is submitted.
	MsgCreating = "Creating encrypted genetic record with FHE..."

	// MsgAwaitingConfirmation is the pending status while a submitted
	// transaction awaits finality.
	MsgAwaitingConfirmation = "Waiting for transaction confirmation..."

	// MsgCreated is the success status of a confirmed creation.
	MsgCreated = "Genetic record created!"

	// MsgTransactionCancelled is the error status when the account owner
	// declined to sign.
	MsgTransactionCancelled = "Transaction cancelled by user"

	// MsgSubmissionFailedPrefix prefixes any other creation failure.
	MsgSubmissionFailedPrefix = "Submission failed: "

	// RecordDescription is the fixed label stored with every new record.
	RecordDescription = "Family member genetic data"
)

// Record disclosure.
const (
	// MsgAlreadyVerified is the success status when the ledger already holds
	// the verified cleartext.
	MsgAlreadyVerified = "Data already verified on-chain"

	// MsgVerifying is the pending status of a decryption-verification run.
	MsgVerifying = "Verifying decryption on-chain..."

	// MsgDecrypted is the success status of a completed disclosure.
	MsgDecrypted = "Genetic data decrypted and verified!"

	// MsgDecryptionFailedPrefix prefixes any disclosure failure.
	MsgDecryptionFailedPrefix = "Decryption failed: "
)

// Refresh.
const (
	// MsgRefreshing is the pending status of a user-requested refresh.
	MsgRefreshing = "Refreshing records..."

	// MsgRefreshed is the success status of a user-requested refresh.
	MsgRefreshed = "Records refreshed"

	// MsgConnecting is the pending status while a session is bound and the
	// encryption client loads its key material.
	MsgConnecting = "Connecting wallet..."

	// MsgConnected is the success status after a session was bound.
	MsgConnected = "Wallet connected"
)
