// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/healthz", h.health)
	router.Get("/version", h.version)
	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.Route("/api/records", func(r chi.Router) {
		r.Get("/", h.listRecords)
		r.Get("/{key}", h.getRecord)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
