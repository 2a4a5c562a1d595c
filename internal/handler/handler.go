// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package handler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/service"
	"github.com/jsdr97/GeneTree-Z/models"
)

type Handler struct {
	records   service.ClientRecordService
	gatherer  prometheus.Gatherer
	buildInfo models.AppBuildInfo
	now       func() time.Time

	logger *logger.Logger
}

// NewHandler builds the ops handler. gatherer backs /metrics; pass
// prometheus.DefaultGatherer in production.
func NewHandler(records service.ClientRecordService, gatherer prometheus.Gatherer, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		records:   records,
		gatherer:  gatherer,
		buildInfo: buildInfo,
		now:       time.Now,
		logger:    logger,
	}
}
