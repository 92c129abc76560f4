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

// Framing magics. Every chunk starts with Begin and ends with End;
// Separator marks the boundary between a chunk's header and its body.
// ArrayBegin/ArrayEnd bracket the repeated-element body pattern used
// by DATABASE_TABLES and COLUMN_DEFINITIONS. Compressed marks a whole
// file as zlib-framed rather than a raw chunk stream.
const (
	MagicBegin      uint32 = 0xAAAAAAAA
	MagicSeparator  uint32 = 0xBBBBBBBB
	MagicEnd        uint32 = 0xCCCCCCCC
	MagicArrayBegin uint32 = 0xDDDDDDDD
	MagicArrayEnd   uint32 = 0xEEEEEEEE
	MagicCompressed uint32 = 0xFFFFFFFF
)

// Kind is a chunk's semantic tag. The wire format stores it as a
// 32-bit word even though only the low byte is ever assigned.
type Kind uint32

const (
	KindWrapper           Kind = 0x00
	KindDatabaseTables    Kind = 0x01
	KindDatabaseFlags     Kind = 0x02
	KindTable             Kind = 0x10
	KindRowCount          Kind = 0x11
	KindColumnDefinitions Kind = 0x12
	KindTableID           Kind = 0x15
	KindTableFlags        Kind = 0x16
	KindColumn            Kind = 0x20
	KindColumnDataType    Kind = 0x21
	KindColumnValues      Kind = 0x22
	KindColumnBlobData    Kind = 0x23
	KindColumnIndex       Kind = 0x24
)

func (k Kind) String() string {
	switch k {
	case KindWrapper:
		return "WRAPPER"
	case KindDatabaseTables:
		return "DATABASE_TABLES"
	case KindDatabaseFlags:
		return "DATABASE_FLAGS"
	case KindTable:
		return "TABLE"
	case KindRowCount:
		return "ROW_COUNT"
	case KindColumnDefinitions:
		return "COLUMN_DEFINITIONS"
	case KindTableID:
		return "TABLE_ID"
	case KindTableFlags:
		return "TABLE_FLAGS"
	case KindColumn:
		return "COLUMN"
	case KindColumnDataType:
		return "COLUMN_DATA_TYPE"
	case KindColumnValues:
		return "COLUMN_VALUES"
	case KindColumnBlobData:
		return "COLUMN_BLOB_DATA"
	case KindColumnIndex:
		return "COLUMN_INDEX"
	default:
		return "UNKNOWN_KIND"
	}
}

// knownKinds is used by the reader to reject tags outside the
// enumerated set with UnknownChunkKind rather than silently accepting
// garbage.
var knownKinds = map[Kind]bool{
	KindWrapper:           true,
	KindDatabaseTables:    true,
	KindDatabaseFlags:     true,
	KindTable:             true,
	KindRowCount:          true,
	KindColumnDefinitions: true,
	KindTableID:           true,
	KindTableFlags:        true,
	KindColumn:            true,
	KindColumnDataType:    true,
	KindColumnValues:      true,
	KindColumnBlobData:    true,
	KindColumnIndex:       true,
}

// IsKnown reports whether k is one of the enumerated chunk kinds.
func (k Kind) IsKnown() bool {
	return knownKinds[k]
}

// WrapperDescription is the fixed literal description of the single
// root WRAPPER chunk in a decompressed CDB stream.
const WrapperDescription = "cyanide database"

// DatabaseFlagsValue is the only legal value of the DATABASE_FLAGS
// chunk.
const DatabaseFlagsValue uint32 = 274
