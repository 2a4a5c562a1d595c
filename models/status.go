// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package models

import "time"

// StatusKind is the coarse state of the lifecycle status projection.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusPending
	StatusSuccess
	StatusError
)

// String implements fmt.Stringer.
func (k StatusKind) String() string {
	switch k {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Stage names the step a pending operation is in.
type Stage string

const (
	StageNone       Stage = ""
	StageEncrypting Stage = "encrypting"
	StageSubmitting Stage = "submitting"
	StageConfirming Stage = "confirming"
	StageChecking   Stage = "checking"
	StageDecrypting Stage = "decrypting"
	StageVerifying  Stage = "verifying"
	StageRefreshing Stage = "refreshing"
	StageConnecting Stage = "connecting"
)

// LifecycleStatus is the UI-facing projection of an in-flight or recently
// finished operation. It is never persisted.
type LifecycleStatus struct {
	Kind    StatusKind
	Stage   Stage
	Message string
	At      time.Time
}

// IdleStatus is the zero status shown when nothing is happening.
func IdleStatus() LifecycleStatus {
	return LifecycleStatus{Kind: StatusIdle}
}

// Visible reports whether the status should be displayed.
func (s LifecycleStatus) Visible() bool {
	return s.Kind != StatusIdle
}
