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

// decodeColumn reads a COLUMN chunk's children in whatever order they
// appear. COLUMN_INDEX, COLUMN_DATA_TYPE and COLUMN_VALUES are
// required; COLUMN_BLOB_DATA is optional regardless of data type, the
// absence of a blob chunk on a blob-carrying type meaning its total
// payload was zero bytes.
func decodeColumn(r *bincursor.Reader, h chunkio.Header) (cdb.Column, error) {
	c := cdb.Column{Name: h.Description}
	var sawIndex, sawType, sawValues bool

	for r.Pos() < h.BodyLimit {
		ch, err := chunkio.ReadHeader(r, h.BodyLimit)
		if err != nil {
			return cdb.Column{}, err
		}
		switch ch.Kind {
		case cdb.KindColumnIndex:
			v, err := chunkio.ReadU32Body(r, ch)
			if err != nil {
				return cdb.Column{}, err
			}
			c.Index = v
			sawIndex = true
		case cdb.KindColumnDataType:
			v, err := chunkio.ReadU32Body(r, ch)
			if err != nil {
				return cdb.Column{}, err
			}
			c.Type = cdb.DataType(v)
			if !c.Type.IsKnown() {
				return cdb.Column{}, &cdb.UnknownDataTypeError{Type: c.Type}
			}
			sawType = true
		case cdb.KindColumnValues:
			v, err := chunkio.ReadRawBody(r, ch)
			if err != nil {
				return cdb.Column{}, err
			}
			c.Values = v
			sawValues = true
		case cdb.KindColumnBlobData:
			v, err := chunkio.ReadRawBody(r, ch)
			if err != nil {
				return cdb.Column{}, err
			}
			c.Blob = v
			c.HasBlobChunk = true
		default:
			return cdb.Column{}, fmt.Errorf("cdb: unexpected child %s of COLUMN", ch.Kind)
		}
	}
	if !sawIndex {
		return cdb.Column{}, &cdb.MissingChildError{Parent: cdb.KindColumn, Want: cdb.KindColumnIndex}
	}
	if !sawType {
		return cdb.Column{}, &cdb.MissingChildError{Parent: cdb.KindColumn, Want: cdb.KindColumnDataType}
	}
	if !sawValues {
		return cdb.Column{}, &cdb.MissingChildError{Parent: cdb.KindColumn, Want: cdb.KindColumnValues}
	}
	if err := chunkio.Finish(r, h); err != nil {
		return cdb.Column{}, err
	}
	return c, nil
}

// encodeColumn emits a COLUMN chunk's children in the fixed order
// COLUMN_INDEX, COLUMN_DATA_TYPE, COLUMN_VALUES, optional
// COLUMN_BLOB_DATA. A blob chunk is written only when c.Blob is
// non-empty, matching the decode side's treatment of a missing blob
// chunk as equivalent to a zero-length one.
func encodeColumn(w *chunkio.Writer, c cdb.Column) {
	w.OpenNamed(cdb.KindColumn, c.Name)
	w.WriteU32Chunk(cdb.KindColumnIndex, c.Index)
	w.WriteU32Chunk(cdb.KindColumnDataType, uint32(c.Type))
	w.WriteBytesChunk(cdb.KindColumnValues, c.Values)
	if len(c.Blob) > 0 {
		w.WriteBytesChunk(cdb.KindColumnBlobData, c.Blob)
	}
	w.Close()
}
