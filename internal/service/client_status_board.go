// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"sync"
	"time"

	"github.com/jsdr97/GeneTree-Z/models"
)

const (
	DefaultSuccessGrace = 2 * time.Second
	DefaultErrorGrace   = 3 * time.Second
)

// StatusBoard is the lifecycle status state machine. Services drive it; the
// presentation subscribes to it and renders whatever it emits.
//
// Success and error statuses expire back to idle after their grace period.
// Every transition bumps a generation counter and an expiry only applies to
// the generation it was scheduled for, so a stale timer never clears a newer
// status.
type StatusBoard struct {
	successGrace time.Duration
	errorGrace   time.Duration
	now          func() time.Time

	mu          sync.Mutex
	current     models.LifecycleStatus
	generation  uint64
	timer       *time.Timer
	subscribers map[uint64]chan models.LifecycleStatus
	nextSubID   uint64
}

// NewStatusBoard creates an idle board. Non-positive grace periods fall back
// to 2s for success and 3s for errors.
func NewStatusBoard(successGrace, errorGrace time.Duration) *StatusBoard {
	if successGrace <= 0 {
		successGrace = DefaultSuccessGrace
	}
	if errorGrace <= 0 {
		errorGrace = DefaultErrorGrace
	}

	return &StatusBoard{
		successGrace: successGrace,
		errorGrace:   errorGrace,
		now:          time.Now,
		current:      models.IdleStatus(),
		subscribers:  make(map[uint64]chan models.LifecycleStatus),
	}
}

// Current returns the status as of now.
func (b *StatusBoard) Current() models.LifecycleStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Pending publishes a pending status. Pending never expires on its own.
func (b *StatusBoard) Pending(stage models.Stage, message string) {
	b.transition(models.StatusPending, stage, message, 0)
}

// Succeed publishes a success status that expires after the success grace.
func (b *StatusBoard) Succeed(stage models.Stage, message string) {
	b.transition(models.StatusSuccess, stage, message, b.successGrace)
}

// Fail publishes an error status that expires after the error grace.
func (b *StatusBoard) Fail(stage models.Stage, message string) {
	b.transition(models.StatusError, stage, message, b.errorGrace)
}

// Clear returns the board to idle immediately.
func (b *StatusBoard) Clear() {
	b.transition(models.StatusIdle, models.StageNone, "", 0)
}

// Subscribe returns a channel that receives every status published from now
// on, starting with the current one. The channel holds only the latest
// status: a slow reader skips intermediate ones. cancel closes the channel.
func (b *StatusBoard) Subscribe() (<-chan models.LifecycleStatus, func()) {
	ch := make(chan models.LifecycleStatus, 1)

	b.mu.Lock()
	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = ch
	ch <- b.current
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

func (b *StatusBoard) transition(kind models.StatusKind, stage models.Stage, message string, ttl time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.generation++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	status := models.LifecycleStatus{Kind: kind, Stage: stage, Message: message, At: b.now()}
	if kind == models.StatusIdle {
		status = models.IdleStatus()
	}
	b.current = status
	b.publishLocked()

	if ttl > 0 {
		gen := b.generation
		b.timer = time.AfterFunc(ttl, func() { b.expire(gen) })
	}
}

func (b *StatusBoard) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.generation {
		return
	}
	b.generation++
	b.timer = nil
	b.current = models.IdleStatus()
	b.publishLocked()
}

// publishLocked hands the current status to every subscriber, replacing an
// unread value if there is one.
func (b *StatusBoard) publishLocked() {
	for _, ch := range b.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- b.current
	}
}
