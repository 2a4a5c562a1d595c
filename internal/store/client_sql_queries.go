// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const recordsTable = "records"

var recordColumns = []string{
	"position",
	"business_key",
	"name",
	"public_relationship",
	"public_value2",
	"description",
	"created_at_ms",
	"creator",
	"is_verified",
	"disclosed_value",
}

// sqlite uses ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectRecords() sq.SelectBuilder {
	return psql.Select(recordColumns...).From(recordsTable)
}
