// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsdr97/GeneTree-Z/internal/adapter"
	"github.com/jsdr97/GeneTree-Z/internal/app"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/utils"
	"github.com/jsdr97/GeneTree-Z/models"
)

type clientSessionService struct {
	signer     adapter.LedgerSigner
	encryption adapter.EncryptionClient
	status     *StatusBoard
	logger     *logger.Logger
	now        func() time.Time

	mu          sync.RWMutex
	session     models.Session
	connected   bool
	initialized bool
}

// NewClientSessionService creates a disconnected ClientSessionService.
func NewClientSessionService(signer adapter.LedgerSigner, encryption adapter.EncryptionClient, status *StatusBoard, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		signer:     signer,
		encryption: encryption,
		status:     status,
		logger:     logger,
		now:        time.Now,
	}
}

// Connect binds token. The encryption client is initialised on the first
// successful connect; a failed Init leaves the session bound and is retried
// on the next Connect.
func (s *clientSessionService) Connect(ctx context.Context, token string) (models.Session, error) {
	session, err := utils.ParseSessionToken(token)
	if err != nil {
		s.status.Fail(models.StageNone, app.MsgConnectWallet)
		s.logger.Err(err).Str("func", "clientSessionService.Connect").Msg("invalid session token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}

	s.status.Pending(models.StageConnecting, app.MsgConnecting)
	s.signer.SetSessionToken(session.Token)

	s.mu.Lock()
	s.session = session
	s.connected = true
	initialized := s.initialized
	s.mu.Unlock()

	if !initialized {
		if err := s.encryption.Init(ctx); err != nil {
			s.status.Fail(models.StageNone, app.MsgFHEInitFailed)
			s.logger.Err(err).Str("func", "clientSessionService.Connect").Msg("encryption client init failed")
			return session, fmt.Errorf("%w: %w", ErrFHEInitFailed, err)
		}

		s.mu.Lock()
		s.initialized = true
		s.mu.Unlock()
	}

	s.status.Succeed(models.StageNone, app.MsgConnected)
	s.logger.Info().Str("func", "clientSessionService.Connect").Str("account", session.Address.String()).Msg("session connected")

	return session, nil
}

func (s *clientSessionService) Disconnect() {
	s.signer.SetSessionToken("")

	s.mu.Lock()
	s.session = models.Session{}
	s.connected = false
	s.mu.Unlock()
}

// Identity reports the connected account. An expired session counts as
// disconnected.
func (s *clientSessionService) Identity() (models.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.connected || s.session.Expired(s.now()) {
		return "", false
	}
	return s.session.Address, true
}
