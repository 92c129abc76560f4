/*
Copyright 2026 The CDB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package sqlrel materializes a decoded CDB database into an embedded
// SQL database and, on the way back, inspects one such database to
// recover the in-memory table model the encoder needs. It is the
// database/sql half of the codec: everything upstream of it works in
// terms of pkg/cdb.Table and pkg/cdb.Column alone.
package sqlrel

import "strings"

// structureTable is the synthetic relational table recording each CDB
// table's name and numeric identifier.
const structureTable = "DB_STRUCTURE"

// maxBoundParams is the bound-parameter ceiling of the embedded
// engine this package targets (modernc.org/sqlite, following SQLite's
// own default SQLITE_MAX_VARIABLE_NUMBER-derived limit). Row
// insertion batches at floor(maxBoundParams / column_count) rows per
// statement.
const maxBoundParams = 999

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteTypeLiteral(annotation string) string {
	return "'" + strings.ReplaceAll(annotation, "'", "''") + "'"
}

func rowsPerBatch(columnCount int) int {
	if columnCount <= 0 {
		return 1
	}
	n := maxBoundParams / columnCount
	if n < 1 {
		n = 1
	}
	return n
}
