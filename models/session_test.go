// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{}.Expired(now))
	assert.False(t, Session{ExpiresAt: now.Add(time.Second)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Second)}.Expired(now))
}

func TestDisclosureResult_Provisional(t *testing.T) {
	p := ProvisionalValue{Key: "member-a", Handle: "0x01", Value: 7}

	got, ok := DecryptedDisclosure(p).Provisional()
	assert.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = LedgerDisclosure("member-a", 7).Provisional()
	assert.False(t, ok)

	raced := RacedDisclosure("member-a")
	_, ok = raced.Provisional()
	assert.False(t, ok)
	assert.False(t, raced.Known)
	assert.Equal(t, SourceRace, raced.Source)
}

func TestFamilyAnalysis_InheritanceDisplay(t *testing.T) {
	assert.Equal(t, int64(100), FamilyAnalysis{InheritanceProbability: 444}.InheritanceDisplay())
	assert.Equal(t, int64(76), FamilyAnalysis{InheritanceProbability: 76}.InheritanceDisplay())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "version 1.0.0, built N/A, commit abc", info.String())
}

func TestStatusKind_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "idle", StatusKind(42).String())
	assert.False(t, IdleStatus().Visible())
	assert.True(t, LifecycleStatus{Kind: StatusError}.Visible())
}
