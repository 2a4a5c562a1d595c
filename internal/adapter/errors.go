// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUserRejected is returned when the account owner declined to sign.
	ErrUserRejected = errors.New("user rejected transaction")
	// ErrReverted is returned when the ledger rejected a transaction.
	ErrReverted = errors.New("transaction reverted")
	// ErrAlreadyVerified is returned alongside ErrReverted when the ledger
	// refused a second verification of the same record.
	ErrAlreadyVerified = errors.New("record already verified")
	// ErrNoSession is returned by signer calls made before a session token
	// was bound.
	ErrNoSession = errors.New("no signer session")
	// ErrNotInitialized is returned by Encrypt before a successful Init.
	ErrNotInitialized = errors.New("encryption client not initialized")
	// ErrMalformedResponse is returned when a collaborator answered 2xx with
	// a body that is missing required fields.
	ErrMalformedResponse = errors.New("malformed response")
)
