// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsdr97/GeneTree-Z/models"
)

// ErrEmptySessionToken is returned for a blank session token.
var ErrEmptySessionToken = errors.New("empty session token")

// ParseSessionToken extracts the connected account from a signer session
// token issued by the wallet bridge.
//
// The token is parsed without signature verification: the bridge that signed
// it is the only party that verifies it, and the client only needs the
// subject (the account address) and the expiry. An expired token is rejected.
//
// Example usage:
//
//	session, err := utils.ParseSessionToken(rawToken)
//	if err != nil {
//	    // stay disconnected
//	}
func ParseSessionToken(tokenString string) (models.Session, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer "))
	if tokenString == "" {
		return models.Session{}, ErrEmptySessionToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.Session{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	address, err := models.ParseAddress(sub)
	if err != nil {
		return models.Session{}, fmt.Errorf("session subject is not an account: %w", err)
	}

	session := models.Session{Token: tokenString, Address: address}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
		if session.Expired(time.Now()) {
			return models.Session{}, jwt.ErrTokenExpired
		}
	}

	return session, nil
}
