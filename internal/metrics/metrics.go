// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package metrics provides Prometheus instrumentation for the record
// lifecycle: creation and disclosure outcomes, refresh results, and how long
// ledger confirmations take.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	OutcomeLedger    = "ledger"
	OutcomeRace      = "race"
	OutcomeDecrypted = "decrypted"
)

// Metrics holds the lifecycle collectors.
type Metrics struct {
	RecordsCreated       *prometheus.CounterVec
	Disclosures          *prometheus.CounterVec
	Refreshes            *prometheus.CounterVec
	RecordsSkipped       prometheus.Counter
	SnapshotSize         prometheus.Gauge
	ConfirmationDuration prometheus.Histogram
}

// New creates a Metrics instance registered with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "genetree_records_created_total",
			Help: "Record creation attempts by outcome",
		}, []string{"outcome"}),
		Disclosures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "genetree_disclosures_total",
			Help: "Record disclosure attempts by outcome",
		}, []string{"outcome"}),
		Refreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "genetree_refreshes_total",
			Help: "Record store refreshes by outcome",
		}, []string{"outcome"}),
		RecordsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "genetree_refresh_records_skipped_total",
			Help: "Records skipped during refresh because they could not be fetched",
		}),
		SnapshotSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "genetree_snapshot_records",
			Help: "Number of records in the current snapshot",
		}),
		ConfirmationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "genetree_confirmation_duration_seconds",
			Help:    "Time from submission to ledger finality",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		}),
	}
}

// Nop returns Metrics registered with a private registry, for tests and
// callers that do not expose /metrics.
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}

// IncCreated records a creation attempt with the given outcome.
func (m *Metrics) IncCreated(outcome string) {
	m.RecordsCreated.WithLabelValues(outcome).Inc()
}

// IncDisclosure records a disclosure attempt with the given outcome.
func (m *Metrics) IncDisclosure(outcome string) {
	m.Disclosures.WithLabelValues(outcome).Inc()
}

// ObserveRefresh records a refresh outcome, the resulting snapshot size and
// the number of skipped records.
func (m *Metrics) ObserveRefresh(outcome string, size, skipped int) {
	m.Refreshes.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.SnapshotSize.Set(float64(size))
	}
	m.RecordsSkipped.Add(float64(skipped))
}

// ObserveConfirmation records how long a confirmation took.
// Call with time.Now() taken right after submission.
func (m *Metrics) ObserveConfirmation(start time.Time) {
	m.ConfirmationDuration.Observe(time.Since(start).Seconds())
}
