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

package cdb

// Column is the in-memory record of one CDB column, shared by both
// the decoder's assembler and the encoder's inspector.
type Column struct {
	// Name is the column's description, used as the SQL column
	// name.
	Name string

	// Index is the column's original physical position in the
	// source schema. It is not necessarily equal to the column's
	// position within its table's column-definitions array.
	Index uint32

	Type DataType

	// Values holds the column's fixed-stride COLUMN_VALUES body.
	Values []byte

	// Blob holds the column's variable-width COLUMN_BLOB_DATA
	// body, including its 4-byte size prefix. Nil for types that
	// never carry a blob, and for types that do but whose total
	// payload is zero bytes.
	Blob []byte

	// HasBlobChunk records whether a COLUMN_BLOB_DATA chunk was
	// physically present on decode, distinguishing "no rows carry
	// payload" from "the blob chunk was simply omitted" — both are
	// treated as an empty blob per spec, but the encoder only
	// needs to know the payload length, not this flag.
	HasBlobChunk bool
}

// Table is the in-memory record of one CDB table.
type Table struct {
	// Name is the table's description, used as the SQL table
	// name.
	Name string

	ID       uint32
	RowCount uint32

	// Flags is TABLE_FLAGS. It is required on encode and tolerated
	// absent (FlagsKnown false) on decode.
	Flags      uint32
	FlagsKnown bool

	// Columns are kept in original physical order as they appear
	// in the COLUMN_DEFINITIONS array; this order is preserved
	// verbatim through decode and re-encode.
	Columns []Column
}
