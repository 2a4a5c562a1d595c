// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/mock"
	"github.com/jsdr97/GeneTree-Z/internal/service"
	"github.com/jsdr97/GeneTree-Z/internal/tui"
	"github.com/jsdr97/GeneTree-Z/models"
)

type stubUI struct {
	err    error
	called atomic.Bool
}

func (s *stubUI) MainLoop(context.Context) error {
	s.called.Store(true)
	return s.err
}

type spyServer struct {
	ran      chan struct{}
	shutdown atomic.Int32
}

func (s *spyServer) RunServer() { close(s.ran) }
func (s *spyServer) Shutdown()  { s.shutdown.Add(1) }

type spyCloser struct{ closed atomic.Bool }

func (s *spyCloser) Close() error {
	s.closed.Store(true)
	return nil
}

type appMocks struct {
	records *mock.MockClientRecordService
	session *mock.MockClientSessionService
	job     *mock.MockClientRefreshJob
}

func newTestServices(t *testing.T) (*service.ClientServices, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &appMocks{
		records: mock.NewMockClientRecordService(ctrl),
		session: mock.NewMockClientSessionService(ctrl),
		job:     mock.NewMockClientRefreshJob(ctrl),
	}
	return &service.ClientServices{
		Status:         service.NewStatusBoard(0, 0),
		RecordService:  m.records,
		SessionService: m.session,
		RefreshJob:     m.job,
	}, m
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := NewApp(nil, services, &stubUI{}, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrIncompleteApp)

	_, err = NewApp(&config.ClientConfig{}, nil, &stubUI{}, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrIncompleteApp)

	_, err = NewApp(&config.ClientConfig{}, services, nil, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrIncompleteApp)
}

func TestApp_Run_FullLifecycle(t *testing.T) {
	services, m := newTestServices(t)
	cfg := &config.ClientConfig{
		App:     config.ClientApp{SessionToken: "tok"},
		Workers: config.ClientWorkers{RefreshInterval: 30 * time.Second},
	}

	gomock.InOrder(
		m.records.EXPECT().Warm(gomock.Any()).Return(nil),
		m.session.EXPECT().Connect(gomock.Any(), "tok").Return(models.Session{Token: "tok"}, nil),
		m.job.EXPECT().Start(gomock.Any(), 30*time.Second),
		m.job.EXPECT().Stop(),
	)

	ui := &stubUI{err: tui.ErrUserQuit}
	ops := &spyServer{ran: make(chan struct{})}
	closer := &spyCloser{}

	app, err := NewApp(cfg, services, ui, ops, closer, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	assert.True(t, ui.called.Load())
	assert.Equal(t, int32(1), ops.shutdown.Load())
	assert.True(t, closer.closed.Load())
	select {
	case <-ops.ran:
	case <-time.After(time.Second):
		t.Fatal("ops server was not started")
	}
}

func TestApp_Run_NoSessionNoOps(t *testing.T) {
	services, m := newTestServices(t)

	m.records.EXPECT().Warm(gomock.Any()).Return(nil)
	m.job.EXPECT().Start(gomock.Any(), time.Duration(0))
	m.job.EXPECT().Stop()

	app, err := NewApp(&config.ClientConfig{}, services, &stubUI{}, nil, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_StartupFailuresAreNotFatal(t *testing.T) {
	services, m := newTestServices(t)
	cfg := &config.ClientConfig{App: config.ClientApp{SessionToken: "expired"}}

	m.records.EXPECT().Warm(gomock.Any()).Return(errors.New("disk gone"))
	m.session.EXPECT().Connect(gomock.Any(), "expired").Return(models.Session{}, service.ErrNotConnected)
	m.job.EXPECT().Start(gomock.Any(), gomock.Any())
	m.job.EXPECT().Stop()

	ui := &stubUI{}
	app, err := NewApp(cfg, services, ui, nil, nil, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(context.Background()))
	assert.True(t, ui.called.Load())
}

func TestApp_Run_UIErrorIsReturned(t *testing.T) {
	services, m := newTestServices(t)
	boom := errors.New("terminal lost")

	m.records.EXPECT().Warm(gomock.Any()).Return(nil)
	m.job.EXPECT().Start(gomock.Any(), gomock.Any())
	m.job.EXPECT().Stop()

	closer := &spyCloser{}
	app, err := NewApp(&config.ClientConfig{}, services, &stubUI{err: boom}, nil, closer, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(context.Background()), boom)
	assert.True(t, closer.closed.Load())
}
