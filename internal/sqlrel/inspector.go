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

// Inspect recovers the in-memory table model from a relational
// database previously built by Build (or hand-edited but schema
// compatible with it): it enumerates DB_STRUCTURE ordered by
// identifier, then for each table reads its column schema, recovers
// each column's packed metadata, loads and transposes its rows, and
// hands each column's values to the matching type codec.
func Inspect(db *sql.DB) ([]cdb.Table, error) {
	return InspectWithFlags(db, nil)
}

// InspectWithFlags is Inspect, but consults overrides before the
// built-in TABLE_FLAGS table for a given table id. cdbtool batch uses
// this to supply flag values for tables the reference save never
// covered, via its jsonconfig file's "tableFlags" object.
func InspectWithFlags(db *sql.DB, overrides map[uint32]uint32) ([]cdb.Table, error) {
	rows, err := db.Query(fmt.Sprintf(`SELECT name, id FROM %s ORDER BY id`, quoteIdent(structureTable)))
	if err != nil {
		return nil, fmt.Errorf("sqlrel: query %s: %w", structureTable, err)
	}
	defer rows.Close()

	type entry struct {
		name string
		id   sql.NullInt64
	}
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.name, &e.id); err != nil {
			return nil, fmt.Errorf("sqlrel: scan %s row: %w", structureTable, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tables := make([]cdb.Table, len(entries))
	for i, e := range entries {
		if !e.id.Valid {
			return nil, cdb.ErrNullTableID
		}
		t, err := inspectTable(db, e.name, uint32(e.id.Int64), overrides)
		if err != nil {
			return nil, fmt.Errorf("sqlrel: table %q: %w", e.name, err)
		}
		tables[i] = t
	}
	return tables, nil
}

type columnInfo struct {
	name string
	meta cdb.Metadata
}

// ColumnSummary describes one column's recovered schema without
// touching any of its row data.
type ColumnSummary struct {
	Name  string
	Index uint32
	Type  cdb.DataType
}

// TableSummary describes one table's recovered schema and row count
// without decoding any column values.
type TableSummary struct {
	Name     string
	ID       uint32
	RowCount int
	Columns  []ColumnSummary
}

// Summarize reads DB_STRUCTURE and each table's PRAGMA table_info,
// and counts rows with SELECT COUNT(*), but never loads or decodes a
// column's values. It is the introspection path cdbtool inspect uses
// in place of the full Build/Inspect materialization.
func Summarize(db *sql.DB) ([]TableSummary, error) {
	rows, err := db.Query(fmt.Sprintf(`SELECT name, id FROM %s ORDER BY id`, quoteIdent(structureTable)))
	if err != nil {
		return nil, fmt.Errorf("sqlrel: query %s: %w", structureTable, err)
	}
	defer rows.Close()

	type entry struct {
		name string
		id   sql.NullInt64
	}
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.name, &e.id); err != nil {
			return nil, fmt.Errorf("sqlrel: scan %s row: %w", structureTable, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summaries := make([]TableSummary, len(entries))
	for i, e := range entries {
		if !e.id.Valid {
			return nil, cdb.ErrNullTableID
		}
		infos, err := tableColumns(db, e.name)
		if err != nil {
			return nil, fmt.Errorf("sqlrel: table %q: %w", e.name, err)
		}
		var rowCount int
		if err := db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, quoteIdent(e.name))).Scan(&rowCount); err != nil {
			return nil, fmt.Errorf("sqlrel: count %q: %w", e.name, err)
		}
		columns := make([]ColumnSummary, len(infos))
		for j, info := range infos {
			columns[j] = ColumnSummary{Name: info.name, Index: info.meta.ColumnIndex, Type: info.meta.Type}
		}
		summaries[i] = TableSummary{Name: e.name, ID: uint32(e.id.Int64), RowCount: rowCount, Columns: columns}
	}
	return summaries, nil
}

func inspectTable(db *sql.DB, name string, tableID uint32, overrides map[uint32]uint32) (cdb.Table, error) {
	infos, err := tableColumns(db, name)
	if err != nil {
		return cdb.Table{}, err
	}

	matrix, rowCount, err := loadRows(db, name, infos)
	if err != nil {
		return cdb.Table{}, err
	}

	flags, ok := overrides[tableID]
	if !ok {
		flags, ok = cdb.TableFlags(tableID)
	}
	if !ok {
		return cdb.Table{}, &cdb.UnknownTableIDError{TableID: tableID}
	}

	columns := make([]cdb.Column, len(infos))
	for i, info := range infos {
		codec, err := columncodec.For(info.meta.Type)
		if err != nil {
			return cdb.Table{}, err
		}
		values, blob, err := codec.Encode(matrix[i])
		if err != nil {
			return cdb.Table{}, fmt.Errorf("column %q: %w", info.name, err)
		}
		columns[i] = cdb.Column{
			Name:   info.name,
			Index:  info.meta.ColumnIndex,
			Type:   info.meta.Type,
			Values: values,
			Blob:   blob,
		}
	}

	return cdb.Table{
		Name:       name,
		ID:         tableID,
		RowCount:   uint32(rowCount),
		Flags:      flags,
		FlagsKnown: true,
		Columns:    columns,
	}, nil
}

// tableColumns reads name's schema via PRAGMA table_info, preserving
// creation order (which Build makes equal to the original CDB
// physical column order), and recovers each column's packed metadata
// from its type annotation.
func tableColumns(db *sql.DB, name string) ([]columnInfo, error) {
	rows, err := db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, quoteIdent(name)))
	if err != nil {
		return nil, fmt.Errorf("table_info: %w", err)
	}
	defer rows.Close()

	var infos []columnInfo
	for rows.Next() {
		var (
			cid        int
			colName    string
			colType    string
			notNull    int
			dfltValue  sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dfltValue, &primaryKey); err != nil {
			return nil, fmt.Errorf("table_info scan: %w", err)
		}
		meta, err := cdb.ParseAnnotation(unquoteTypeLiteral(colType))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", colName, err)
		}
		infos = append(infos, columnInfo{name: colName, meta: meta})
	}
	return infos, rows.Err()
}

// unquoteTypeLiteral strips the single quotes Build wraps every type
// annotation in, tolerating drivers that report the declared type
// with or without them.
func unquoteTypeLiteral(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

func loadRows(db *sql.DB, name string, infos []columnInfo) ([][]any, int, error) {
	if len(infos) == 0 {
		return nil, 0, nil
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = quoteIdent(info.name)
	}

	rows, err := db.Query(fmt.Sprintf(`SELECT %s FROM %s`, strings.Join(names, ", "), quoteIdent(name)))
	if err != nil {
		return nil, 0, fmt.Errorf("select: %w", err)
	}
	defer rows.Close()

	matrix := make([][]any, len(infos))
	rowCount := 0
	for rows.Next() {
		dest := make([]any, len(infos))
		destPtrs := make([]any, len(infos))
		for i := range dest {
			destPtrs[i] = &dest[i]
		}
		if err := rows.Scan(destPtrs...); err != nil {
			return nil, 0, fmt.Errorf("scan row %d: %w", rowCount, err)
		}
		for i, v := range dest {
			matrix[i] = append(matrix[i], v)
		}
		rowCount++
	}
	return matrix, rowCount, rows.Err()
}
