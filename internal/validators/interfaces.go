// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

// Package validators checks owner-supplied record input and record keys
// before the lifecycle encrypts or submits anything.
package validators

import "context"

// Validator validates value. fields, when given, limit the check to the
// named fields (see FieldName, FieldRelationship, FieldHealthScore).
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
