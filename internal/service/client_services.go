// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"github.com/jsdr97/GeneTree-Z/internal/adapter"
	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/metrics"
	"github.com/jsdr97/GeneTree-Z/internal/store"
)

// ClientServices groups the client services wired to one ledger and one
// relayer.
type ClientServices struct {
	Status           *StatusBoard
	SessionService   ClientSessionService
	RecordService    ClientRecordService
	LifecycleService ClientLifecycleService
	RefreshJob       ClientRefreshJob
}

func NewClientServices(
	storages *store.ClientStorages,
	ledger adapter.LedgerGateway,
	relayer adapter.RelayerAdapter,
	cfg *config.ClientConfig,
	m *metrics.Metrics,
	logger *logger.Logger,
) *ClientServices {
	status := NewStatusBoard(cfg.App.SuccessGrace, cfg.App.ErrorGrace)
	sessionSvc := NewClientSessionService(ledger, relayer, status, logger)
	recordSvc := NewClientRecordService(ledger, storages, m, logger)
	lifecycleSvc := NewClientLifecycleService(ledger, relayer, relayer, recordSvc, sessionSvc, status, cfg.App, m, logger)

	return &ClientServices{
		Status:           status,
		SessionService:   sessionSvc,
		RecordService:    recordSvc,
		LifecycleService: lifecycleSvc,
		RefreshJob:       NewClientRefreshJob(recordSvc, logger),
	}
}
