// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package models

// HealthValueSource tells where an analysis input came from.
type HealthValueSource int

const (
	HealthFromLedger HealthValueSource = iota + 1
	HealthFromProvisional
	HealthFromFallback
)

// String implements fmt.Stringer.
func (s HealthValueSource) String() string {
	switch s {
	case HealthFromLedger:
		return "ledger"
	case HealthFromProvisional:
		return "provisional"
	case HealthFromFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// HealthValue is the resolved health input of the analysis.
type HealthValue struct {
	Value  int64
	Source HealthValueSource
}

// FamilyAnalysis holds the derived scores shown for a record.
type FamilyAnalysis struct {
	GeneticCompatibility   int64
	HealthRisk             float64
	InheritanceProbability int64
	RelationshipStrength   int64
	PrivacyScore           int64
}

// InheritanceDisplay is InheritanceProbability capped at 100 for rendering.
func (a FamilyAnalysis) InheritanceDisplay() int64 {
	return min(a.InheritanceProbability, 100)
}

// Dashboard summarizes the current record collection.
type Dashboard struct {
	Total                     int     `json:"total"`
	Verified                  int     `json:"verified"`
	AveragePublicRelationship float64 `json:"average_public_relationship"`
	RecentWeek                int     `json:"recent_week"`
}
