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

package assemble

import (
	"encoding/binary"
	"errors"
	"testing"

	"cyanidedb.org/internal/chunkio"
	"cyanidedb.org/pkg/cdb"
)

func TestEmptyDatabaseRoundTrip(t *testing.T) {
	buf := EncodeDatabase(nil)
	tables, err := DecodeDatabase(buf)
	if err != nil {
		t.Fatalf("DecodeDatabase: %v", err)
	}
	if len(tables) != 0 {
		t.Fatalf("tables = %v, want empty", tables)
	}
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestSingleIntegerColumnRoundTrip(t *testing.T) {
	rows := []int32{1, -2, 3}
	values := make([]byte, 0, len(rows)*4)
	for _, v := range rows {
		values = append(values, le32(uint32(v))...)
	}

	table := cdb.Table{
		Name:       "T",
		ID:         3,
		RowCount:   uint32(len(rows)),
		Flags:      0,
		FlagsKnown: true,
		Columns: []cdb.Column{
			{Name: "c", Index: 0, Type: cdb.TypeInteger, Values: values},
		},
	}

	buf := EncodeDatabase([]cdb.Table{table})
	got, err := DecodeDatabase(buf)
	if err != nil {
		t.Fatalf("DecodeDatabase: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("tables = %d, want 1", len(got))
	}
	gt := got[0]
	if gt.Name != "T" || gt.ID != 3 || gt.RowCount != 3 {
		t.Fatalf("table = %+v", gt)
	}
	if len(gt.Columns) != 1 {
		t.Fatalf("columns = %d, want 1", len(gt.Columns))
	}
	gc := gt.Columns[0]
	if gc.Name != "c" || gc.Type != cdb.TypeInteger {
		t.Fatalf("column = %+v", gc)
	}
	for i, v := range rows {
		got := int32(binary.LittleEndian.Uint32(gc.Values[i*4:]))
		if got != v {
			t.Fatalf("row %d = %d, want %d", i, got, v)
		}
	}
}

func TestMissingRequiredChildFails(t *testing.T) {
	w := chunkio.NewWriter()
	w.OpenNamed(cdb.KindWrapper, cdb.WrapperDescription)
	w.WriteU32Chunk(cdb.KindDatabaseFlags, cdb.DatabaseFlagsValue)

	w.Open(cdb.KindDatabaseTables)
	w.BeginArray(1)
	w.OpenNamed(cdb.KindTable, "T")
	w.WriteU32Chunk(cdb.KindTableID, 3) // no ROW_COUNT
	w.WriteU32Chunk(cdb.KindTableFlags, 0)
	w.Open(cdb.KindColumnDefinitions)
	w.BeginArray(0)
	w.EndArray()
	w.Close()
	w.Close() // TABLE
	w.EndArray()
	w.Close() // DATABASE_TABLES

	w.Close() // WRAPPER
	buf := w.Finalize()

	_, err := DecodeDatabase(buf)
	var mce *cdb.MissingChildError
	if !errors.As(err, &mce) || mce.Want != cdb.KindRowCount {
		t.Fatalf("err = %v, want MissingChildError{Want: ROW_COUNT}", err)
	}
}
