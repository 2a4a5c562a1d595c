// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"math"

	"github.com/jsdr97/GeneTree-Z/models"
)

// FallbackAnalysisInput is used for the health value of a sealed record and
// for a zero relationship.
const FallbackAnalysisInput = 5

// ResolveHealthValue picks the health input for the analysis of record.
//
// The ledger value wins when the record is verified. Otherwise provisional is
// used if it belongs to the same record. Anything else yields
// FallbackAnalysisInput.
func ResolveHealthValue(record models.Record, provisional *models.ProvisionalValue) models.HealthValue {
	if v, ok := record.LedgerValue(); ok {
		return models.HealthValue{Value: v, Source: models.HealthFromLedger}
	}
	if provisional != nil && provisional.Key == record.Key {
		return models.HealthValue{Value: provisional.Value, Source: models.HealthFromProvisional}
	}
	return models.HealthValue{Value: FallbackAnalysisInput, Source: models.HealthFromFallback}
}

// AnalyzeRecord runs AnalyzeFamily on the resolved inputs of record.
func AnalyzeRecord(record models.Record, provisional *models.ProvisionalValue) models.FamilyAnalysis {
	h := ResolveHealthValue(record, provisional)
	r := record.PublicRelationship
	if r == 0 {
		r = FallbackAnalysisInput
	}
	return AnalyzeFamily(h.Value, r)
}

// AnalyzeFamily derives the display scores from a health value h and a
// relationship strength r. It is pure and deterministic.
func AnalyzeFamily(h, r int64) models.FamilyAnalysis {
	hf, rf := float64(h), float64(r)

	return models.FamilyAnalysis{
		GeneticCompatibility:   min(100, roundHalfUp((hf*0.6+rf*0.4)*10)),
		HealthRisk:             max(5, min(95, 100-(hf*0.8+rf*0.2))),
		InheritanceProbability: roundHalfUp((hf*0.3 + rf*0.7) * 12),
		RelationshipStrength:   min(95, roundHalfUp((hf*0.4+rf*0.6)*15)),
		PrivacyScore:           min(100, roundHalfUp((hf*0.2+rf*0.8)*20)),
	}
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
