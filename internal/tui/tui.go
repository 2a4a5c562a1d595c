// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package tui is the terminal presentation of the GeneTree-Z client. It
// renders the record list, the per-record analysis and the creation form,
// and mirrors the lifecycle status published by the services.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/service"
	"github.com/jsdr97/GeneTree-Z/models"
)

var ErrUserQuit = errors.New("user quit")

// DefaultOperationTimeout bounds a single user action when none is configured.
const DefaultOperationTimeout = 2 * time.Minute

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	opTimeout time.Duration
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, opTimeout time.Duration, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	if opTimeout <= 0 {
		opTimeout = DefaultOperationTimeout
	}
	return &TUI{services: services, buildInfo: buildInfo, opTimeout: opTimeout, logger: logger}, nil
}

// MainLoop runs the interactive program until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	statusCh, cancel := t.services.Status.Subscribe()
	defer cancel()

	model := newMainLoopModel(ctx, t.deps(), statusCh)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) deps() mainLoopDeps {
	return mainLoopDeps{
		records:   t.services.RecordService,
		lifecycle: t.services.LifecycleService,
		session:   t.services.SessionService,
		buildInfo: t.buildInfo,
		opTimeout: t.opTimeout,
		logger:    t.logger,
		now:       time.Now,
	}
}
