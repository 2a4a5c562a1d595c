// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package server

import (
	"net/http"
	"sync"

	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	once sync.Once
}

// NewServer builds the ops server for cfg.Address. It returns
// ErrNoServersAreCreated when the address is empty.
func NewServer(handler http.Handler, cfg config.ClientMetrics, logger *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, ErrNoServersAreCreated
	}

	logger.Info().Str("address", cfg.Address).Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, cfg.Address, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.logger.Info().Msg("Launching HTTP server")
	s.httpServer.RunServer()
}

// Shutdown is safe to call more than once.
func (s *server) Shutdown() {
	s.once.Do(func() {
		s.httpServer.Shutdown()
		s.logger.Info().Msg("server Shutdown gracefully")
	})
}
