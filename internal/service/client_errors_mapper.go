// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsdr97/GeneTree-Z/internal/adapter"
)

// alreadyVerifiedMarker is the ledger's revert text for a second verification
// of the same record.
const alreadyVerifiedMarker = "already verified"

// mapAdapterError translates an adapter transport error into a service
// business error. fallback is used when err carries no more specific meaning
// for the calling step. The adapter error stays in the chain.
func mapAdapterError(err error, fallback error) error {
	if err == nil {
		return nil
	}

	var target error
	switch {
	case errors.Is(err, adapter.ErrUserRejected):
		target = ErrSubmissionRejected
	case errors.Is(err, adapter.ErrNoSession), errors.Is(err, adapter.ErrUnauthorized):
		target = ErrNotConnected
	case errors.Is(err, adapter.ErrNotFound):
		target = ErrRecordNotFound
	case errors.Is(err, adapter.ErrAlreadyVerified):
		target = ErrAlreadyVerified
	case errors.Is(err, adapter.ErrReverted):
		target = ErrConfirmationFailed
	default:
		target = fallback
	}

	return fmt.Errorf("%w: %w", target, err)
}

// isAlreadyVerified reports whether err says the record was verified by
// someone else first.
func isAlreadyVerified(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrAlreadyVerified) ||
		errors.Is(err, adapter.ErrAlreadyVerified) ||
		strings.Contains(strings.ToLower(err.Error()), alreadyVerifiedMarker)
}

// causeText renders err for a status message.
func causeText(err error) string {
	if err == nil || err.Error() == "" {
		return "unknown error"
	}
	return err.Error()
}
