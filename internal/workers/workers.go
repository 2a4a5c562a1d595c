// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package workers

import (
	"context"
	"time"

	"github.com/jsdr97/GeneTree-Z/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type refreshWorker struct {
	job      service.ClientRefreshJob
	interval time.Duration
}

// NewRefreshWorker runs job every interval.
func NewRefreshWorker(job service.ClientRefreshJob, interval time.Duration) Worker {
	return &refreshWorker{job: job, interval: interval}
}

func (r *refreshWorker) Start(ctx context.Context) {
	r.job.Start(ctx, r.interval)
}

func (r *refreshWorker) Stop() {
	r.job.Stop()
}
