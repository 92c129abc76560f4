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

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Metadata is the reversible (table_id, column_index, data_type)
// triple a column's SQL type annotation carries across the relational
// round-trip.
type Metadata struct {
	TableID     uint32
	ColumnIndex uint32
	Type        DataType
}

// Pack folds m into the single nonnegative integer stored as the
// trailing integer of a column's annotation:
//
//	N = (table_id*256 + column_index)*16 + (data_type & 0xF)
func Pack(m Metadata) uint64 {
	return (uint64(m.TableID)*256+uint64(m.ColumnIndex))*16 + uint64(m.Type&0xF)
}

// Unpack inverts Pack.
func Unpack(n uint64) Metadata {
	return Metadata{
		TableID:     uint32(n >> 12),
		ColumnIndex: uint32((n >> 4) & 0xFF),
		Type:        DataType(n & 0xF),
	}
}

// StructureSentinel is the nominal (table_id=1, column_index=1,
// data_type=2) triple DB_STRUCTURE's own "name" column is described
// with. Pack(StructureSentinel) is 4114, not the value this sentinel
// is actually annotated with — see structureSentinelPacked.
var StructureSentinel = Metadata{TableID: 1, ColumnIndex: 1, Type: TypeString}

// structureSentinelPacked is the literal packed integer the format
// fixes DB_STRUCTURE's annotation at: 274, numerically equal to
// DatabaseFlagsValue. This is a hardcoded coincidence in the wire
// format, not Pack's output for StructureSentinel's triple, and lets
// the encoder recognize DB_STRUCTURE without a dedicated flag in the
// annotation grammar.
const structureSentinelPacked uint64 = 274

// Annotation renders the SQL column type annotation for m: the base
// type chosen from m.Type, a space, then the packed integer. The
// StructureSentinel triple is special-cased to structureSentinelPacked
// rather than Pack(m), per the format's fixed value for it.
func Annotation(m Metadata) string {
	packed := Pack(m)
	if m == StructureSentinel {
		packed = structureSentinelPacked
	}
	return fmt.Sprintf("%s %d", m.Type.SQLBaseType(), packed)
}

// trailingInt recovers the trailing integer of a type annotation by
// numeric-suffix match rather than positional slicing, so callers may
// surround it with arbitrary whitespace or a base-type prefix of any
// length.
var trailingInt = regexp.MustCompile(`(\d+)\s*$`)

// ParseAnnotation extracts the packed metadata integer from a column
// type annotation produced by Annotation, tolerating surrounding
// whitespace.
func ParseAnnotation(annotation string) (Metadata, error) {
	m := trailingInt.FindStringSubmatch(strings.TrimSpace(annotation))
	if m == nil {
		return Metadata{}, fmt.Errorf("cdb: type annotation %q carries no packed metadata integer", annotation)
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Metadata{}, fmt.Errorf("cdb: type annotation %q: %w", annotation, err)
	}
	return Unpack(n), nil
}
