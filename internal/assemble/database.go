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

// Package assemble builds the in-memory []cdb.Table model from a
// decompressed chunk stream, and emits one back. It owns the
// WRAPPER/DATABASE_TABLES/TABLE/COLUMN tree walk; internal/chunkio
// owns the framing beneath it and internal/columncodec the per-type
// bytes beneath that.
package assemble

import (
	"fmt"

	"cyanidedb.org/internal/bincursor"
	"cyanidedb.org/internal/chunkio"
	"cyanidedb.org/pkg/cdb"
)

// DecodeDatabase parses a decompressed chunk stream into its tables,
// descending the root WRAPPER chunk's children in whatever order they
// appear.
func DecodeDatabase(buf []byte) ([]cdb.Table, error) {
	r := bincursor.NewReader(buf)
	root, err := chunkio.ReadHeader(r, -1)
	if err != nil {
		return nil, err
	}
	if root.Kind != cdb.KindWrapper {
		return nil, fmt.Errorf("cdb: root chunk is %s, want WRAPPER", root.Kind)
	}
	if root.Description != cdb.WrapperDescription {
		return nil, fmt.Errorf("cdb: wrapper description %q, want %q", root.Description, cdb.WrapperDescription)
	}

	var tables []cdb.Table
	var sawFlags, sawTables bool
	for r.Pos() < root.BodyLimit {
		h, err := chunkio.ReadHeader(r, root.BodyLimit)
		if err != nil {
			return nil, err
		}
		switch h.Kind {
		case cdb.KindDatabaseFlags:
			v, err := chunkio.ReadU32Body(r, h)
			if err != nil {
				return nil, err
			}
			if v != cdb.DatabaseFlagsValue {
				return nil, fmt.Errorf("cdb: DATABASE_FLAGS = %d, want %d", v, cdb.DatabaseFlagsValue)
			}
			sawFlags = true
		case cdb.KindDatabaseTables:
			tables, err = decodeTableArray(r, h)
			if err != nil {
				return nil, err
			}
			sawTables = true
		default:
			return nil, fmt.Errorf("cdb: unexpected child %s of WRAPPER", h.Kind)
		}
	}
	if !sawFlags {
		return nil, &cdb.MissingChildError{Parent: cdb.KindWrapper, Want: cdb.KindDatabaseFlags}
	}
	if !sawTables {
		return nil, &cdb.MissingChildError{Parent: cdb.KindWrapper, Want: cdb.KindDatabaseTables}
	}
	if err := chunkio.Finish(r, root); err != nil {
		return nil, err
	}
	return tables, nil
}

func decodeTableArray(r *bincursor.Reader, h chunkio.Header) ([]cdb.Table, error) {
	count, err := chunkio.ReadArrayBegin(r)
	if err != nil {
		return nil, err
	}
	tables := make([]cdb.Table, count)
	for i := range tables {
		elemHeader, err := chunkio.ReadHeader(r, h.BodyLimit)
		if err != nil {
			return nil, err
		}
		if elemHeader.Kind != cdb.KindTable {
			return nil, fmt.Errorf("cdb: DATABASE_TABLES element %d is %s, want TABLE", i, elemHeader.Kind)
		}
		table, err := decodeTable(r, elemHeader)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}
	if err := chunkio.ReadArrayEnd(r); err != nil {
		return nil, err
	}
	if err := chunkio.Finish(r, h); err != nil {
		return nil, err
	}
	return tables, nil
}

// EncodeDatabase serializes tables into a decompressed chunk stream
// under a single root WRAPPER chunk.
func EncodeDatabase(tables []cdb.Table) []byte {
	w := chunkio.NewWriter()
	w.OpenNamed(cdb.KindWrapper, cdb.WrapperDescription)
	w.WriteU32Chunk(cdb.KindDatabaseFlags, cdb.DatabaseFlagsValue)

	w.Open(cdb.KindDatabaseTables)
	w.BeginArray(uint32(len(tables)))
	for _, t := range tables {
		encodeTable(w, t)
	}
	w.EndArray()
	w.Close()

	w.Close()
	return w.Finalize()
}
