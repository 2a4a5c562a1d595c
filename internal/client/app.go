// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package client

import (
	"context"
	"errors"
	"io"

	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/server"
	"github.com/jsdr97/GeneTree-Z/internal/service"
	"github.com/jsdr97/GeneTree-Z/internal/tui"
	"github.com/jsdr97/GeneTree-Z/internal/workers"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	ops      server.Server
	closer   io.Closer

	logger *logger.Logger
}

// NewApp assembles the runtime. ops may be nil when the ops endpoint is
// disabled; closer releases the storage layer on exit and may be nil.
func NewApp(
	cfg *config.ClientConfig,
	services *service.ClientServices,
	ui UI,
	ops server.Server,
	closer io.Closer,
	logger *logger.Logger,
) (*App, error) {
	if cfg == nil || services == nil || ui == nil {
		return nil, ErrIncompleteApp
	}

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(workers.NewRefreshWorker(services.RefreshJob, cfg.Workers.RefreshInterval)),
		ops:      ops,
		closer:   closer,
		logger:   logger,
	}, nil
}

// Run warms the record store from the snapshot cache, binds the configured
// session, starts the background workers and the ops server, and blocks in
// the UI. Quitting the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.closer != nil {
		defer func() {
			if err := a.closer.Close(); err != nil {
				a.logger.Err(err).Str("func", "*App.Run").Msg("error closing storages")
			}
		}()
	}

	if err := a.services.RecordService.Warm(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("snapshot cache warm-up failed")
	}

	if token := a.cfg.App.SessionToken; token != "" {
		if _, err := a.services.SessionService.Connect(ctx, token); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("configured session could not be connected")
		}
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if a.ops != nil {
		go a.ops.RunServer()
		defer a.ops.Shutdown()
	}

	err := a.ui.MainLoop(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
