// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import "errors"

// Lifecycle errors. Every error returned by the client services wraps one of
// these; callers classify with [errors.Is].
var (
	ErrNotConnected   = errors.New("not connected")
	ErrInvalidInput   = errors.New("invalid input")
	ErrFHEInitFailed  = errors.New("fhe initialization failed")
	ErrRecordNotFound = errors.New("record not found")

	ErrEncryptionFailed   = errors.New("encryption failed")
	ErrSubmissionRejected = errors.New("submission rejected by user")
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrConfirmationFailed = errors.New("confirmation failed")

	ErrAlreadyVerified  = errors.New("already verified")
	ErrDecryptionFailed = errors.New("decryption failed")

	ErrListingFailed = errors.New("listing failed")
)
