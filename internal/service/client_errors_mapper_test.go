// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsdr97/GeneTree-Z/internal/adapter"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"user rejected", fmt.Errorf("create: %w", adapter.ErrUserRejected), ErrSubmissionRejected},
		{"no session", adapter.ErrNoSession, ErrNotConnected},
		{"unauthorized", adapter.ErrUnauthorized, ErrNotConnected},
		{"not found", adapter.ErrNotFound, ErrRecordNotFound},
		{"reverted", adapter.ErrReverted, ErrConfirmationFailed},
		{"already verified", fmt.Errorf("%w: %w", adapter.ErrReverted, adapter.ErrAlreadyVerified), ErrAlreadyVerified},
		{"anything else", errors.New("socket closed"), ErrSubmissionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err, ErrSubmissionFailed)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "cause must stay in the chain")
		})
	}

	assert.NoError(t, mapAdapterError(nil, ErrSubmissionFailed))
}

func TestIsAlreadyVerified(t *testing.T) {
	assert.True(t, isAlreadyVerified(errors.New("execution reverted: Data already verified")))
	assert.True(t, isAlreadyVerified(fmt.Errorf("wrap: %w", ErrAlreadyVerified)))
	assert.True(t, isAlreadyVerified(errors.New("ALREADY VERIFIED")))
	assert.True(t, isAlreadyVerified(fmt.Errorf("%w: %w", adapter.ErrReverted, adapter.ErrAlreadyVerified)))
	assert.False(t, isAlreadyVerified(errors.New("reverted")))
	assert.False(t, isAlreadyVerified(nil))
}

func TestCauseText(t *testing.T) {
	assert.Equal(t, "unknown error", causeText(nil))
	assert.Equal(t, "unknown error", causeText(errors.New("")))
	assert.Equal(t, "boom", causeText(errors.New("boom")))
}
