// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package store

import (
	"context"

	"github.com/jsdr97/GeneTree-Z/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalRecordRepository persists the public part of the last known ledger
// snapshot so the client can show records before the first refresh.
// Ciphertext handles and provisional values are never stored.
type LocalRecordRepository interface {
	// ReplaceRecords atomically replaces the cached snapshot with records,
	// preserving their order.
	ReplaceRecords(ctx context.Context, records []models.Record) error
	// GetAllRecords returns the cached snapshot in stored order.
	GetAllRecords(ctx context.Context) ([]models.Record, error)
	// GetRecord returns one cached record or [ErrRecordNotCached].
	GetRecord(ctx context.Context, key models.RecordKey) (models.Record, error)
}
