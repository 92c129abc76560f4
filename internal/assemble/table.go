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
	"fmt"

	"cyanidedb.org/internal/bincursor"
	"cyanidedb.org/internal/chunkio"
	"cyanidedb.org/pkg/cdb"
)

// decodeTable reads a TABLE chunk's children in whatever order they
// appear, failing with MissingChildError if TABLE_ID, ROW_COUNT or
// COLUMN_DEFINITIONS never show up. TABLE_FLAGS is optional.
func decodeTable(r *bincursor.Reader, h chunkio.Header) (cdb.Table, error) {
	t := cdb.Table{Name: h.Description}
	var sawID, sawRowCount, sawColumns bool

	for r.Pos() < h.BodyLimit {
		ch, err := chunkio.ReadHeader(r, h.BodyLimit)
		if err != nil {
			return cdb.Table{}, err
		}
		switch ch.Kind {
		case cdb.KindTableID:
			v, err := chunkio.ReadU32Body(r, ch)
			if err != nil {
				return cdb.Table{}, err
			}
			t.ID = v
			sawID = true
		case cdb.KindRowCount:
			v, err := chunkio.ReadU32Body(r, ch)
			if err != nil {
				return cdb.Table{}, err
			}
			t.RowCount = v
			sawRowCount = true
		case cdb.KindTableFlags:
			v, err := chunkio.ReadU32Body(r, ch)
			if err != nil {
				return cdb.Table{}, err
			}
			t.Flags = v
			t.FlagsKnown = true
		case cdb.KindColumnDefinitions:
			cols, err := decodeColumnArray(r, ch)
			if err != nil {
				return cdb.Table{}, err
			}
			t.Columns = cols
			sawColumns = true
		default:
			return cdb.Table{}, fmt.Errorf("cdb: unexpected child %s of TABLE", ch.Kind)
		}
	}
	if !sawID {
		return cdb.Table{}, &cdb.MissingChildError{Parent: cdb.KindTable, Want: cdb.KindTableID}
	}
	if !sawRowCount {
		return cdb.Table{}, &cdb.MissingChildError{Parent: cdb.KindTable, Want: cdb.KindRowCount}
	}
	if !sawColumns {
		return cdb.Table{}, &cdb.MissingChildError{Parent: cdb.KindTable, Want: cdb.KindColumnDefinitions}
	}
	if err := chunkio.Finish(r, h); err != nil {
		return cdb.Table{}, err
	}
	return t, nil
}

func decodeColumnArray(r *bincursor.Reader, h chunkio.Header) ([]cdb.Column, error) {
	count, err := chunkio.ReadArrayBegin(r)
	if err != nil {
		return nil, err
	}
	cols := make([]cdb.Column, count)
	for i := range cols {
		elemHeader, err := chunkio.ReadHeader(r, h.BodyLimit)
		if err != nil {
			return nil, err
		}
		if elemHeader.Kind != cdb.KindColumn {
			return nil, fmt.Errorf("cdb: COLUMN_DEFINITIONS element %d is %s, want COLUMN", i, elemHeader.Kind)
		}
		col, err := decodeColumn(r, elemHeader)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	if err := chunkio.ReadArrayEnd(r); err != nil {
		return nil, err
	}
	if err := chunkio.Finish(r, h); err != nil {
		return nil, err
	}
	return cols, nil
}

// encodeTable emits a TABLE chunk's children in the fixed order
// TABLE_ID, ROW_COUNT, TABLE_FLAGS, COLUMN_DEFINITIONS. t.FlagsKnown
// must be true; the encode path always has a table-flags value by the
// time it reaches here (internal/sqlrel resolves it from the
// identifier map before calling in).
func encodeTable(w *chunkio.Writer, t cdb.Table) {
	w.OpenNamed(cdb.KindTable, t.Name)
	w.WriteU32Chunk(cdb.KindTableID, t.ID)
	w.WriteU32Chunk(cdb.KindRowCount, t.RowCount)
	w.WriteU32Chunk(cdb.KindTableFlags, t.Flags)

	w.Open(cdb.KindColumnDefinitions)
	w.BeginArray(uint32(len(t.Columns)))
	for _, c := range t.Columns {
		encodeColumn(w, c)
	}
	w.EndArray()
	w.Close()

	w.Close()
}
