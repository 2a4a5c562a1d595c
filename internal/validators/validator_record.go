// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package validators

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jsdr97/GeneTree-Z/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a new record.
	FieldName = "name"

	// FieldRelationship targets the public relationship strength (1-10).
	FieldRelationship = "relationship"

	// FieldHealthScore targets the value that will be encrypted.
	FieldHealthScore = "health_score"
)

const (
	MinRelationship = 1
	MaxRelationship = 10

	// MaxHealthScore is the largest value the relayer encrypts (euint32).
	MaxHealthScore = math.MaxUint32

	MaxNameLength = 64
)

// RecordValidator implements [Validator] for record creation input, record
// keys and account addresses.
type RecordValidator struct{}

// NewRecordValidator returns a ready-to-use [RecordValidator].
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of value. Field scoping applies to
// [models.CreateInput] only.
func (v *RecordValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.CreateInput:
		return v.validateCreateInput(ctx, value, fields...)
	case *models.CreateInput:
		return v.validateCreateInput(ctx, *value, fields...)

	case models.RecordKey:
		return validateRecordKey(value)

	case models.Address:
		if _, err := models.ParseAddress(value.String()); err != nil {
			return ErrInvalidAccount
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateCreateInput(_ context.Context, input models.CreateInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldRelationship, FieldHealthScore}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(input.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldRelationship:
			if input.Relationship < MinRelationship || input.Relationship > MaxRelationship {
				return ErrInvalidRelationship
			}
		case FieldHealthScore:
			if input.HealthScore < 0 || input.HealthScore > MaxHealthScore {
				return ErrInvalidHealthScore
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateRecordKey(key models.RecordKey) error {
	suffix, ok := strings.CutPrefix(key.String(), models.RecordKeyPrefix)
	if !ok || suffix == "" {
		return ErrInvalidRecordKey
	}
	return nil
}
