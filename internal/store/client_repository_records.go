// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRecordRepository returns a [LocalRecordRepository] over db.
func NewLocalRecordRepository(db *DB, logger *logger.Logger) LocalRecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRecordRepository) ReplaceRecords(ctx context.Context, records []models.Record) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.ReplaceRecords").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := psql.Delete(recordsTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "localRecordRepository.ReplaceRecords").Msg("failed to clear cached records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(records) > 0 {
		insert := psql.Insert(recordsTable).Columns(recordColumns...)
		for i, r := range records {
			insert = insert.Values(
				i,
				r.Key.String(),
				r.DisplayName,
				r.PublicRelationship,
				r.PublicValue2,
				r.Description,
				r.CreatedAt.UnixMilli(),
				r.Creator.String(),
				r.IsVerified,
				r.DisclosedValue,
			)
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "localRecordRepository.ReplaceRecords").
				Int("records", len(records)).
				Msg("failed to insert cached records")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localRecordRepository.ReplaceRecords").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localRecordRepository) GetAllRecords(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectRecords().OrderBy("position ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.GetAllRecords").Msg("failed to query cached records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "localRecordRepository.GetAllRecords").Msg("failed to scan cached record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (l *localRecordRepository) GetRecord(ctx context.Context, key models.RecordKey) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectRecords().Where(sq.Eq{"business_key": key.String()}).ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanRecord(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotCached
	}
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.GetRecord").
			Str("key", key.String()).
			Msg("failed to scan cached record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		r         models.Record
		position  int
		key       string
		creator   string
		createdMs int64
	)

	err := row.Scan(
		&position,
		&key,
		&r.DisplayName,
		&r.PublicRelationship,
		&r.PublicValue2,
		&r.Description,
		&createdMs,
		&creator,
		&r.IsVerified,
		&r.DisclosedValue,
	)
	if err != nil {
		return models.Record{}, err
	}

	r.Key = models.RecordKey(key)
	r.Creator = models.Address(creator)
	r.CreatedAt = time.UnixMilli(createdMs).UTC()
	r.ID = r.DeriveID()

	return r, nil
}
