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

package sqlrel

import (
	"database/sql"
	"fmt"
	"strings"

	"cyanidedb.org/internal/columncodec"
	"cyanidedb.org/pkg/cdb"
)

// Build materializes tables into db: one user table per CDB table,
// columns in original physical order and annotated with their packed
// metadata integer, plus DB_STRUCTURE mapping each table's name to
// its identifier. db is expected to be a fresh, empty database; Build
// does not attempt to reconcile an existing schema.
func Build(db *sql.DB, tables []cdb.Table) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("sqlrel: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf(
		`CREATE TABLE %s (%s %s, %s INTEGER)`,
		quoteIdent(structureTable),
		quoteIdent("name"), quoteTypeLiteral(cdb.Annotation(cdb.StructureSentinel)),
		quoteIdent("id"),
	)); err != nil {
		return fmt.Errorf("sqlrel: create %s: %w", structureTable, err)
	}

	for _, t := range tables {
		if err := buildTable(tx, t); err != nil {
			return fmt.Errorf("sqlrel: table %q: %w", t.Name, err)
		}
		if _, err := tx.Exec(
			fmt.Sprintf(`INSERT INTO %s (name, id) VALUES (?, ?)`, quoteIdent(structureTable)),
			t.Name, t.ID,
		); err != nil {
			return fmt.Errorf("sqlrel: insert into %s: %w", structureTable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlrel: commit: %w", err)
	}
	return nil
}

func buildTable(tx *sql.Tx, t cdb.Table) error {
	defs := make([]string, len(t.Columns))
	decoded := make([][]any, len(t.Columns))
	for i, c := range t.Columns {
		meta := cdb.Metadata{TableID: t.ID, ColumnIndex: c.Index, Type: c.Type}
		defs[i] = quoteIdent(c.Name) + " " + quoteTypeLiteral(cdb.Annotation(meta))

		codec, err := columncodec.For(c.Type)
		if err != nil {
			return err
		}
		rows, err := codec.Decode(t.RowCount, c.Values, c.Blob)
		if err != nil {
			return fmt.Errorf("column %q: %w", c.Name, err)
		}
		decoded[i] = rows
	}

	if _, err := tx.Exec(fmt.Sprintf(`CREATE TABLE %s (%s)`, quoteIdent(t.Name), strings.Join(defs, ", "))); err != nil {
		return err
	}
	if t.RowCount == 0 || len(t.Columns) == 0 {
		return nil
	}
	return insertRows(tx, t.Name, t.Columns, decoded, int(t.RowCount))
}

func insertRows(tx *sql.Tx, tableName string, columns []cdb.Column, decoded [][]any, rowCount int) error {
	colCount := len(columns)
	names := make([]string, colCount)
	for i, c := range columns {
		names[i] = quoteIdent(c.Name)
	}

	batch := rowsPerBatch(colCount)
	for start := 0; start < rowCount; start += batch {
		n := batch
		if start+n > rowCount {
			n = rowCount - start
		}

		placeholders := make([]string, n)
		args := make([]any, 0, n*colCount)
		rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", colCount), ", ") + ")"
		for r := 0; r < n; r++ {
			placeholders[r] = rowPlaceholder
			for c := 0; c < colCount; c++ {
				args = append(args, decoded[c][start+r])
			}
		}

		stmt := fmt.Sprintf(`INSERT INTO %s (%s) VALUES %s`,
			quoteIdent(tableName), strings.Join(names, ", "), strings.Join(placeholders, ", "))
		if _, err := tx.Exec(stmt, args...); err != nil {
			return fmt.Errorf("insert rows [%d,%d): %w", start, start+n, err)
		}
	}
	return nil
}
