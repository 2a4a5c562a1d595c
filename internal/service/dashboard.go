// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"time"

	"github.com/jsdr97/GeneTree-Z/models"
)

// RecentWindow is how far back a record counts as recent on the dashboard.
const RecentWindow = 7 * 24 * time.Hour

// Summarize computes the dashboard for records as of now.
func Summarize(records []models.Record, now time.Time) models.Dashboard {
	var d models.Dashboard
	if len(records) == 0 {
		return d
	}

	var relationshipSum int64
	cutoff := now.Add(-RecentWindow)
	for _, r := range records {
		d.Total++
		if r.IsVerified {
			d.Verified++
		}
		relationshipSum += r.PublicRelationship
		if r.CreatedAt.After(cutoff) {
			d.RecentWeek++
		}
	}
	d.AveragePublicRelationship = float64(relationshipSum) / float64(d.Total)

	return d
}
