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
	"encoding/binary"
	"testing"

	_ "modernc.org/sqlite"

	"cyanidedb.org/pkg/cdb"
)

func openMemDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func TestEmptyDatabaseProducesOnlyStructure(t *testing.T) {
	db := openMemDB(t)
	if err := Build(db, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	tables, err := Inspect(db)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(tables) != 0 {
		t.Fatalf("tables = %v, want none", tables)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM DB_STRUCTURE`).Scan(&count); err != nil {
		t.Fatalf("count DB_STRUCTURE: %v", err)
	}
	if count != 0 {
		t.Fatalf("DB_STRUCTURE rows = %d, want 0", count)
	}
}

func TestSingleIntegerColumnRoundTrip(t *testing.T) {
	rows := []int32{1, -2, 3}
	values := make([]byte, 0, len(rows)*4)
	for _, v := range rows {
		values = append(values, le32(v)...)
	}

	in := cdb.Table{
		Name:       "T",
		ID:         3,
		RowCount:   uint32(len(rows)),
		FlagsKnown: true,
		Columns: []cdb.Column{
			{Name: "c", Index: 0, Type: cdb.TypeInteger, Values: values},
		},
	}

	db := openMemDB(t)
	if err := Build(db, []cdb.Table{in}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	var name string
	var id int
	if err := db.QueryRow(`SELECT name, id FROM DB_STRUCTURE`).Scan(&name, &id); err != nil {
		t.Fatalf("query DB_STRUCTURE: %v", err)
	}
	if name != "T" || id != 3 {
		t.Fatalf("DB_STRUCTURE row = (%q, %d), want (T, 3)", name, id)
	}

	out, err := Inspect(db)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("tables = %d, want 1", len(out))
	}
	ot := out[0]
	if ot.Name != "T" || ot.ID != 3 || ot.RowCount != 3 {
		t.Fatalf("table = %+v", ot)
	}
	if len(ot.Columns) != 1 || ot.Columns[0].Name != "c" || ot.Columns[0].Type != cdb.TypeInteger {
		t.Fatalf("columns = %+v", ot.Columns)
	}
	for i, v := range rows {
		got := int32(binary.LittleEndian.Uint32(ot.Columns[0].Values[i*4:]))
		if got != v {
			t.Fatalf("row %d = %d, want %d", i, got, v)
		}
	}
	if _, ok := cdb.TableFlags(3); !ok {
		t.Fatal("test fixture assumes table id 3 has a known TABLE_FLAGS entry")
	}
}

func TestRowBatchingExceedsBoundParamLimit(t *testing.T) {
	const rowCount = 2000
	values := make([]byte, 0, rowCount*4)
	for i := int32(0); i < rowCount; i++ {
		values = append(values, le32(i)...)
	}

	in := cdb.Table{
		Name:       "Big",
		ID:         5,
		RowCount:   rowCount,
		FlagsKnown: true,
		Columns: []cdb.Column{
			{Name: "v", Index: 0, Type: cdb.TypeInteger, Values: values},
		},
	}

	db := openMemDB(t)
	if err := Build(db, []cdb.Table{in}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "Big"`).Scan(&count); err != nil {
		t.Fatalf("count Big: %v", err)
	}
	if count != rowCount {
		t.Fatalf("row count = %d, want %d", count, rowCount)
	}
}

func TestUnknownTableIDFailsEncode(t *testing.T) {
	db := openMemDB(t)
	if _, err := db.Exec(`CREATE TABLE DB_STRUCTURE (name 'TEXT 274', id INTEGER)`); err != nil {
		t.Fatalf("create DB_STRUCTURE: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE "Ghost" ("x" 'INTEGER 4096')`); err != nil {
		t.Fatalf("create Ghost: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO DB_STRUCTURE (name, id) VALUES ('Ghost', 999999)`); err != nil {
		t.Fatalf("insert DB_STRUCTURE: %v", err)
	}

	_, err := Inspect(db)
	if err == nil {
		t.Fatal("Inspect with an unmapped table id: want error, got nil")
	}
}
