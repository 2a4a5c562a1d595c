// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"context"
	"sync"
	"time"

	"github.com/jsdr97/GeneTree-Z/internal/logger"
)

// DefaultRefreshInterval is used when Start gets a non-positive interval.
const DefaultRefreshInterval = time.Minute

type clientRefreshJob struct {
	records ClientRecordService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls records.Refresh
// on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(records ClientRecordService, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{records: records, logger: logger}
}

// Start implements ClientRefreshJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.records.Refresh(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "clientRefreshJob.Start").Msg("periodic refresh failed")
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
