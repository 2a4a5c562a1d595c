// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/jsdr97/GeneTree-Z/models"
)

func renderDashboard(d models.Dashboard) string {
	return fmt.Sprintf("Members: %d │ Verified: %d │ Avg relationship: %.1f │ New this week: %d",
		d.Total, d.Verified, d.AveragePublicRelationship, d.RecentWeek)
}

func renderRecordTable(records []models.Record, idx int) string {
	if len(records) == 0 {
		return "No family records yet. Press n to add one."
	}

	var b strings.Builder
	b.WriteString("#    │ Name                     │ Rel. │ Health     │ Created\n")
	b.WriteString("─────┼──────────────────────────┼──────┼────────────┼─────────────────\n")
	for i, r := range records {
		cursor := " "
		if i == idx {
			cursor = ">"
		}

		state := "sealed"
		if v, ok := r.LedgerValue(); ok {
			state = fmt.Sprintf("verified %d", v)
		}

		fmt.Fprintf(&b, "%s %-3d│ %-24s │ %-4d │ %-10s │ %s\n",
			cursor,
			i+1,
			fitText(r.DisplayName, 24),
			r.PublicRelationship,
			fitText(state, 10),
			formatCreated(r.CreatedAt),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
