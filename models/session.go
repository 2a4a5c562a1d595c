// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package models

import "time"

// Session is the connected signer identity derived from a session token.
type Session struct {
	// Token is the raw bearer token attached to signer requests.
	Token string
	// Address is the account the token was issued for.
	Address Address
	// ExpiresAt is zero when the token carries no expiry.
	ExpiresAt time.Time
}

// Expired reports whether the session has an expiry at or before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
