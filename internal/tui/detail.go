// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsdr97/GeneTree-Z/internal/service"
	"github.com/jsdr97/GeneTree-Z/models"
)

func viewDetail(record models.Record, provisional *models.ProvisionalValue) (title, body, hotKeys string) {
	var b strings.Builder

	b.WriteString("[ RECORD ]\n")
	b.WriteString("Name          : " + valueOrDash(record.DisplayName) + "\n")
	b.WriteString("Key           : " + record.Key.String() + "\n")
	b.WriteString(fmt.Sprintf("Relationship  : %d / 10\n", record.PublicRelationship))
	b.WriteString("Created       : " + formatCreated(record.CreatedAt) + "\n")
	b.WriteString("Creator       : " + valueOrDash(record.Creator.Short()) + "\n")
	b.WriteString("Description   : " + valueOrDash(record.Description) + "\n")
	b.WriteString("Health score  : " + healthLine(record, provisional) + "\n\n")

	health := service.ResolveHealthValue(record, provisional)
	a := service.AnalyzeRecord(record, provisional)

	b.WriteString("[ FAMILY ANALYSIS ]\n")
	if health.Source == models.HealthFromFallback {
		b.WriteString(helpStyle.Render("Based on default inputs until the health score is disclosed.") + "\n")
	}
	b.WriteString("Genetic compatibility   " + renderBar(float64(a.GeneticCompatibility), fmt.Sprintf("%d%%", a.GeneticCompatibility)) + "\n")
	b.WriteString("Health risk             " + renderBar(a.HealthRisk, fmt.Sprintf("%.1f%%", a.HealthRisk)) + "\n")
	b.WriteString("Inheritance probability " + renderBar(float64(a.InheritanceDisplay()), fmt.Sprintf("%d%%", a.InheritanceDisplay())) + "\n")
	b.WriteString("Relationship strength   " + renderBar(float64(a.RelationshipStrength), fmt.Sprintf("%d%%", a.RelationshipStrength)) + "\n")
	b.WriteString("Privacy score           " + renderBar(float64(a.PrivacyScore), fmt.Sprintf("%d%%", a.PrivacyScore)) + "\n")

	title = "MEMBER: " + fitText(record.DisplayName, 40)
	hotKeys = "d: decrypt & verify │ c: copy key │ r: refresh │ esc: back"
	return title, b.String(), hotKeys
}

func healthLine(record models.Record, provisional *models.ProvisionalValue) string {
	if v, ok := record.LedgerValue(); ok {
		return successStyle.Render(fmt.Sprintf("%d", v)) + "  verified on-chain"
	}
	if provisional != nil && provisional.Key == record.Key {
		return fmt.Sprintf("%d", provisional.Value) + "  decrypted locally, awaiting ledger"
	}
	return sealedStyle.Render("sealed") + "  press d to decrypt"
}

func formatCreated(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
