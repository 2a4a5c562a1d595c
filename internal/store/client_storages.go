// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package store

import (
	"context"
	"fmt"

	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// Snapshot is the in-memory record snapshot shared by the services.
	Snapshot *RecordSnapshot
	// RecordRepository is the SQLite-backed snapshot cache.
	RecordRepository LocalRecordRepository

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs an empty [RecordSnapshot] and a [LocalRecordRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Snapshot:         NewRecordSnapshot(),
		RecordRepository: NewLocalRecordRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
