// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/metrics"
	"github.com/jsdr97/GeneTree-Z/internal/mock"
	"github.com/jsdr97/GeneTree-Z/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) (http.Handler, *mock.MockClientRecordService, *metrics.Metrics) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock.NewMockClientRecordService(ctrl)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	h := NewHandler(records, reg, models.NewAppBuildInfo("1.4.0", "2026-03-01", "abc123"), logger.Nop())
	h.now = func() time.Time { return testNow }
	return h.Init(), records, m
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

// ── /healthz ─────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	router, records, _ := newRouter(t)
	records.EXPECT().Dashboard(testNow).Return(models.Dashboard{Total: 3, Verified: 1, AveragePublicRelationship: 5.5, RecentWeek: 2})

	rr := serve(router, http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, 3, got.Dashboard.Total)
	assert.Equal(t, 1, got.Dashboard.Verified)
	assert.InDelta(t, 5.5, got.Dashboard.AveragePublicRelationship, 1e-9)
}

func TestHealth_WrongMethodIsNotFound(t *testing.T) {
	router, _, _ := newRouter(t)

	rr := serve(router, http.MethodPost, "/healthz")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── /version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	router, _, _ := newRouter(t)

	rr := serve(router, http.MethodGet, "/version")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rr.Body.String())
}

// ── /metrics ─────────────────────────────────────────────────────────────────

func TestMetrics(t *testing.T) {
	router, _, m := newRouter(t)
	m.RecordsCreated.WithLabelValues(metrics.OutcomeSuccess).Inc()

	rr := serve(router, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `genetree_records_created_total{outcome="success"} 1`)
}

// ── /api/records ─────────────────────────────────────────────────────────────

func TestListRecords(t *testing.T) {
	router, records, _ := newRouter(t)
	records.EXPECT().All().Return([]models.Record{
		{Key: "member-a", DisplayName: "Alice", PublicRelationship: 7},
		{Key: "member-b", DisplayName: "Bob", PublicRelationship: 3, IsVerified: true, DisclosedValue: 42},
	})

	rr := serve(router, http.MethodGet, "/api/records")

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, models.RecordKey("member-a"), got[0].Key)
	assert.Equal(t, int64(42), got[1].DisclosedValue)
}

func TestListRecords_EmptyIsArray(t *testing.T) {
	router, records, _ := newRouter(t)
	records.EXPECT().All().Return(nil)

	rr := serve(router, http.MethodGet, "/api/records")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetRecord(t *testing.T) {
	router, records, _ := newRouter(t)
	records.EXPECT().Get(models.RecordKey("member-a")).Return(models.Record{Key: "member-a", DisplayName: "Alice"}, true)

	rr := serve(router, http.MethodGet, "/api/records/member-a")

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Alice", got.DisplayName)
}

func TestGetRecord_NotFound(t *testing.T) {
	router, records, _ := newRouter(t)
	records.EXPECT().Get(models.RecordKey("member-x")).Return(models.Record{}, false)

	rr := serve(router, http.MethodGet, "/api/records/member-x")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrRecordNotFound.Error())
}

func TestUnknownRoute(t *testing.T) {
	router, _, _ := newRouter(t)

	rr := serve(router, http.MethodGet, "/api/unknown")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
