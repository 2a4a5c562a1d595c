// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package service implements the client-side core of GeneTree-Z: the record
// store, the creation and disclosure lifecycles, the status projection the
// presentation subscribes to, the session, and the derived family analysis.
package service

import (
	"context"
	"time"

	"github.com/jsdr97/GeneTree-Z/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRecordService owns the in-memory snapshot of the ledger's records.
type ClientRecordService interface {
	// Refresh lists record keys from the ledger, fetches each record and
	// atomically replaces the snapshot with the fetched set, in ledger order.
	// A record that fails to fetch is logged and skipped. If listing fails the
	// snapshot is left untouched and an error wrapping [ErrListingFailed] is
	// returned.
	Refresh(ctx context.Context) ([]models.Record, error)

	// Warm loads the snapshot cache into memory. It never overrides a
	// snapshot produced by Refresh.
	Warm(ctx context.Context) error

	// All returns the current snapshot in ledger order.
	All() []models.Record

	// Get returns one record from the current snapshot.
	Get(key models.RecordKey) (models.Record, bool)

	// Dashboard summarizes the current snapshot as of now.
	Dashboard(now time.Time) models.Dashboard
}

// ClientLifecycleService drives records through creation and disclosure.
// Steps within one call are strictly sequential; calls are not mutually
// exclusive.
type ClientLifecycleService interface {
	// Create encrypts input.HealthScore, submits a new record bound to the
	// public relationship value, awaits confirmation, and refreshes the
	// store. Returns the new record key.
	Create(ctx context.Context, input models.CreateInput) (models.RecordKey, error)

	// Disclose returns the cleartext of the record's value, running the
	// decryption-verification flow when the ledger does not hold it yet.
	Disclose(ctx context.Context, key models.RecordKey) (models.DisclosureResult, error)
}

// ClientSessionService binds the signer identity the lifecycle acts as.
type ClientSessionService interface {
	IdentityProvider

	// Connect parses the signer session token, binds it to the ledger signer,
	// and initialises the encryption client on first use.
	Connect(ctx context.Context, token string) (models.Session, error)

	// Disconnect unbinds the session. The encryption client stays
	// initialised.
	Disconnect()
}

// IdentityProvider reports the connected account, if any.
type IdentityProvider interface {
	Identity() (models.Address, bool)
}

// ClientRefreshJob periodically refreshes the record store.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 1 minute if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// KeyGenerator produces fresh record keys.
type KeyGenerator interface {
	Generate() models.RecordKey
}
