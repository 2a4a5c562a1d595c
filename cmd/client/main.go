// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsdr97/GeneTree-Z/internal/adapter"
	"github.com/jsdr97/GeneTree-Z/internal/client"
	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/handler"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/metrics"
	"github.com/jsdr97/GeneTree-Z/internal/server"
	"github.com/jsdr97/GeneTree-Z/internal/service"
	"github.com/jsdr97/GeneTree-Z/internal/store"
	"github.com/jsdr97/GeneTree-Z/internal/tui"
	"github.com/jsdr97/GeneTree-Z/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	log := logger.NewClientLogger("genetree-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	ledger, err := adapter.NewLedgerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create ledger adapter")
	}

	relayer, err := adapter.NewRelayerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create relayer adapter")
	}

	services := service.NewClientServices(localStorage, ledger, relayer, cfg, metrics.New(prometheus.DefaultRegisterer), log)

	ui, err := tui.New(services, buildInfo, cfg.App.OperationTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	var ops server.Server
	if cfg.Metrics.Address != "" {
		h := handler.NewHandler(services.RecordService, prometheus.DefaultGatherer, buildInfo, log)
		if ops, err = server.NewServer(h.Init(), cfg.Metrics, log); err != nil {
			log.Fatal().Err(err).Msg("create ops server")
		}
	}

	app, err := client.NewApp(cfg, services, ui, ops, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
