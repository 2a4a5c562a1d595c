// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package tui

import "github.com/jsdr97/GeneTree-Z/models"

type refreshDoneMsg struct {
	records []models.Record
	err     error
}

type createDoneMsg struct {
	key models.RecordKey
	err error
}

type discloseDoneMsg struct {
	key    models.RecordKey
	result models.DisclosureResult
	err    error
}

type connectDoneMsg struct {
	session models.Session
	err     error
}

type statusMsg models.LifecycleStatus

type statusClosedMsg struct{}

type snapshotTickMsg struct{}
