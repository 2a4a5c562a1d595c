// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jsdr97/GeneTree-Z/internal/adapter"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/metrics"
	"github.com/jsdr97/GeneTree-Z/internal/store"
	"github.com/jsdr97/GeneTree-Z/models"
)

// defaultFetchLimit bounds the number of concurrent GetRecord calls during a
// refresh.
const defaultFetchLimit = 8

type clientRecordService struct {
	ledger   adapter.LedgerReader
	snapshot *store.RecordSnapshot
	cache    store.LocalRecordRepository
	metrics  *metrics.Metrics
	logger   *logger.Logger

	fetchLimit int
	now        func() time.Time
}

// NewClientRecordService creates a ClientRecordService reading from ledger
// and keeping its snapshot in storages. storages.RecordRepository may be nil,
// in which case nothing is cached.
func NewClientRecordService(ledger adapter.LedgerReader, storages *store.ClientStorages, m *metrics.Metrics, logger *logger.Logger) ClientRecordService {
	snapshot := storages.Snapshot
	if snapshot == nil {
		snapshot = store.NewRecordSnapshot()
	}

	return &clientRecordService{
		ledger:     ledger,
		snapshot:   snapshot,
		cache:      storages.RecordRepository,
		metrics:    m,
		logger:     logger,
		fetchLimit: defaultFetchLimit,
		now:        time.Now,
	}
}

func (s *clientRecordService) Refresh(ctx context.Context) ([]models.Record, error) {
	ctx, span := tracer.Start(ctx, "records.refresh")
	defer span.End()

	keys, err := s.ledger.ListRecordKeys(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.Refresh").Msg("failed to list record keys")
		s.metrics.ObserveRefresh(metrics.OutcomeFailed, 0, 0)
		spanFail(span, err, "listing failed")
		return nil, fmt.Errorf("%w: %w", ErrListingFailed, err)
	}
	span.SetAttributes(attribute.Int("records.listed", len(keys)))

	fetched := make([]models.Record, len(keys))
	ok := make([]bool, len(keys))

	var g errgroup.Group
	g.SetLimit(s.fetchLimit)
	for i, key := range keys {
		g.Go(func() error {
			record, err := s.ledger.GetRecord(ctx, key)
			if err != nil {
				s.logger.Err(err).
					Str("func", "clientRecordService.Refresh").
					Str("key", key.String()).
					Msg("failed to fetch record, skipping")
				return nil
			}
			if record.Key == "" {
				record.Key = key
			}
			fetched[i] = record
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait()

	// A cancelled refresh would otherwise publish an empty snapshot.
	if err := ctx.Err(); err != nil {
		s.metrics.ObserveRefresh(metrics.OutcomeFailed, 0, 0)
		spanFail(span, err, "refresh cancelled")
		return nil, fmt.Errorf("refresh cancelled: %w", err)
	}

	records := make([]models.Record, 0, len(keys))
	for i := range fetched {
		if ok[i] {
			records = append(records, fetched[i])
		}
	}
	skipped := len(keys) - len(records)

	s.snapshot.Replace(records, s.now())
	s.metrics.ObserveRefresh(metrics.OutcomeSuccess, len(records), skipped)
	span.SetAttributes(attribute.Int("records.fetched", len(records)), attribute.Int("records.skipped", skipped))

	s.writeCache(ctx, span, records)

	s.logger.Debug().
		Str("func", "clientRecordService.Refresh").
		Int("records", len(records)).
		Int("skipped", skipped).
		Msg("snapshot refreshed")

	return records, nil
}

// writeCache stores the public part of records. Failure is logged only.
func (s *clientRecordService) writeCache(ctx context.Context, span trace.Span, records []models.Record) {
	if s.cache == nil {
		return
	}

	public := make([]models.Record, len(records))
	for i, r := range records {
		r.EncryptedValueHandle = ""
		public[i] = r
	}

	if err := s.cache.ReplaceRecords(ctx, public); err != nil {
		span.RecordError(err)
		s.logger.Err(err).Str("func", "clientRecordService.writeCache").Msg("failed to write snapshot cache")
	}
}

func (s *clientRecordService) Warm(ctx context.Context) error {
	if s.cache == nil || !s.snapshot.UpdatedAt().IsZero() {
		return nil
	}

	records, err := s.cache.GetAllRecords(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.Warm").Msg("failed to load snapshot cache")
		return fmt.Errorf("load snapshot cache: %w", err)
	}

	if s.snapshot.Seed(records) {
		s.logger.Debug().Str("func", "clientRecordService.Warm").Int("records", len(records)).Msg("snapshot warmed from cache")
	}
	return nil
}

func (s *clientRecordService) All() []models.Record {
	return s.snapshot.All()
}

func (s *clientRecordService) Get(key models.RecordKey) (models.Record, bool) {
	return s.snapshot.Get(key)
}

func (s *clientRecordService) Dashboard(now time.Time) models.Dashboard {
	return Summarize(s.snapshot.All(), now)
}
