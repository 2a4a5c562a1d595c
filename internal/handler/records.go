// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/utils"
	"github.com/jsdr97/GeneTree-Z/models"
)

type healthResponse struct {
	Status    string           `json:"status"`
	Dashboard models.Dashboard `json:"dashboard"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	resp := healthResponse{Status: "ok", Dashboard: h.records.Dashboard(h.now())}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.health").Msg("error writing response")
	}
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.buildInfo.BuildVersion()))
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	records := h.records.All()
	if records == nil {
		records = []models.Record{}
	}
	if _, err := utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error writing response")
	}
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	key := models.RecordKey(chi.URLParam(r, "key"))
	record, ok := h.records.Get(key)
	if !ok {
		log.Debug().Str("func", "*Handler.getRecord").Str("key", key.String()).Msg("record not found")
		http.Error(w, ErrRecordNotFound.Error(), http.StatusNotFound)
		return
	}

	if _, err := utils.WriteJSON(w, record, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getRecord").Msg("error writing response")
	}
}
