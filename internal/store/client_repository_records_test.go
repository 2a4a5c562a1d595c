// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newMockRepo(t *testing.T) (*localRecordRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewLocalRecordRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
	return repo.(*localRecordRepository), mock
}

var testCreatedAt = time.UnixMilli(1700000000000).UTC()

func sampleRecord() models.Record {
	return models.Record{
		Key:                "member-1700000000000",
		DisplayName:        "Grandma",
		PublicRelationship: 7,
		Description:        "Family member genetic data",
		CreatedAt:          testCreatedAt,
		Creator:            "0x00000000000000000000000000000000000000bb",
		IsVerified:         true,
		DisclosedValue:     42,
	}
}

func recordRows() *sqlmock.Rows {
	return sqlmock.NewRows(recordColumns)
}

// ── ReplaceRecords ────────────────────────────────────────────────────────────

func TestReplaceRecords_DeletesThenInserts(t *testing.T) {
	repo, mock := newMockRepo(t)
	r := sampleRecord()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM records")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records (position,business_key,name,public_relationship,public_value2,description,created_at_ms,creator,is_verified,disclosed_value) VALUES (?,?,?,?,?,?,?,?,?,?)")).
		WithArgs(0, r.Key.String(), r.DisplayName, r.PublicRelationship, r.PublicValue2, r.Description,
			r.CreatedAt.UnixMilli(), r.Creator.String(), r.IsVerified, r.DisclosedValue).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceRecords(context.Background(), []models.Record{r}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceRecords_EmptyOnlyDeletes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM records")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceRecords(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceRecords_BeginError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.ReplaceRecords(context.Background(), []models.Record{sampleRecord()})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestReplaceRecords_InsertErrorRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM records")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceRecords(context.Background(), []models.Record{sampleRecord()})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceRecords_CommitError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM records")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("io"))

	err := repo.ReplaceRecords(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── GetAllRecords ─────────────────────────────────────────────────────────────

func TestGetAllRecords_ScansInOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM records ORDER BY position ASC")).
		WillReturnRows(recordRows().
			AddRow(0, "member-1700000000000", "Grandma", 7, 0, "Family member genetic data", int64(1700000000000), "0xbb", true, 42).
			AddRow(1, "legacy-key", "Uncle", 3, 0, "", int64(1700000005000), "0xbb", false, 0))

	records, err := repo.GetAllRecords(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.RecordKey("member-1700000000000"), records[0].Key)
	assert.Equal(t, int64(1700000000000), records[0].ID)
	assert.True(t, records[0].IsVerified)
	assert.Equal(t, int64(42), records[0].DisclosedValue)
	assert.Equal(t, testCreatedAt, records[0].CreatedAt)
	assert.Equal(t, int64(1700000005000), records[1].ID, "non member keys fall back to created_at")
	assert.Empty(t, records[1].EncryptedValueHandle)
}

func TestGetAllRecords_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("no such table"))

	_, err := repo.GetAllRecords(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetAllRecords_ScanError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT").
		WillReturnRows(recordRows().
			AddRow("not-an-int", "member-1", "x", 1, 0, "", int64(0), "", false, 0))

	_, err := repo.GetAllRecords(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── GetRecord ─────────────────────────────────────────────────────────────────

func TestGetRecord_Found(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM records WHERE business_key = ?")).
		WithArgs("member-1700000000000").
		WillReturnRows(recordRows().
			AddRow(0, "member-1700000000000", "Grandma", 7, 0, "", int64(1700000000000), "0xbb", false, 0))

	r, err := repo.GetRecord(context.Background(), "member-1700000000000")
	require.NoError(t, err)
	assert.Equal(t, "Grandma", r.DisplayName)
	assert.False(t, r.IsVerified)
}

func TestGetRecord_NotCached(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRecord(context.Background(), "member-404")
	assert.ErrorIs(t, err, ErrRecordNotCached)
}

// ── SQLite round trip ─────────────────────────────────────────────────────────

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: t.TempDir() + "/cache/genetree.db"}}
	ctx := context.Background()

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	first := sampleRecord()
	second := sampleRecord()
	second.Key = "member-1700000009999"
	second.IsVerified = false
	second.DisclosedValue = 0

	require.NoError(t, storages.RecordRepository.ReplaceRecords(ctx, []models.Record{second, first}))

	got, err := storages.RecordRepository.GetAllRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.Key, got[0].Key)
	assert.Equal(t, first.Key, got[1].Key)

	require.NoError(t, storages.RecordRepository.ReplaceRecords(ctx, []models.Record{first}))
	_, err = storages.RecordRepository.GetRecord(ctx, second.Key)
	assert.ErrorIs(t, err, ErrRecordNotCached, "stale records must disappear")
}
