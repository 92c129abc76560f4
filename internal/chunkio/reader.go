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

// Package chunkio implements the CDB chunk framing protocol: the
// begin/separator/end magic sequence every chunk is wrapped in, the
// array-body pattern used by DATABASE_TABLES and COLUMN_DEFINITIONS,
// and the writer's deferred chunk-size back-patching.
package chunkio

import (
	"bytes"

	"cyanidedb.org/internal/bincursor"
	"cyanidedb.org/pkg/cdb"
)

// Header is what ReadHeader hands back to the caller: the chunk's
// kind and description, and BodyLimit, the offset of its end-magic,
// so the caller knows where its body must stop.
type Header struct {
	Kind           cdb.Kind
	Description    string
	HasDescription bool

	begin     int
	size      uint32
	BodyLimit int
}

// ReadHeader reads one chunk's begin-magic through separator-magic,
// leaving the cursor positioned at the start of the body. parentLimit
// is the offset the enclosing chunk's body must not run past; pass -1
// at the document root.
func ReadHeader(r *bincursor.Reader, parentLimit int) (Header, error) {
	begin := r.Pos()

	magic, err := r.U32()
	if err != nil {
		return Header{}, err
	}
	if magic != cdb.MagicBegin {
		return Header{}, &cdb.BadMagicError{Field: "begin-magic", Want: cdb.MagicBegin, Got: magic}
	}

	size, err := r.U32()
	if err != nil {
		return Header{}, err
	}

	kindRaw, err := r.U32()
	if err != nil {
		return Header{}, err
	}
	kind := cdb.Kind(kindRaw)
	if !kind.IsKnown() {
		return Header{}, &cdb.UnknownChunkKindError{Kind: kind}
	}

	if parentLimit >= 0 && begin+int(size) > parentLimit {
		return Header{}, &cdb.TruncatedChunkError{Kind: kind, Want: int(size), Have: parentLimit - begin}
	}

	if _, err := r.U32(); err != nil { // reserved flags, always zero
		return Header{}, err
	}

	hasDesc, err := r.U32()
	if err != nil {
		return Header{}, err
	}

	var description string
	if hasDesc != 0 {
		descLen, err := r.U32()
		if err != nil {
			return Header{}, err
		}
		raw, err := r.Bytes(int(descLen))
		if err != nil {
			return Header{}, err
		}
		description = string(bytes.TrimRight(raw, "\x00"))
	}

	if err := r.SkipPadding(); err != nil {
		return Header{}, err
	}

	sep, err := r.U32()
	if err != nil {
		return Header{}, err
	}
	if sep != cdb.MagicSeparator {
		return Header{}, &cdb.BadMagicError{Field: "separator-magic", Want: cdb.MagicSeparator, Got: sep}
	}

	return Header{
		Kind:           kind,
		Description:    description,
		HasDescription: hasDesc != 0,
		begin:          begin,
		size:           size,
		BodyLimit:      begin + int(size) - 4,
	}, nil
}

// Finish consumes a chunk's body-pad and end-magic. The cursor must
// be positioned exactly at the end of h's raw body (before padding)
// when this is called.
func Finish(r *bincursor.Reader, h Header) error {
	if err := r.SkipPadding(); err != nil {
		return err
	}
	if r.Pos() != h.BodyLimit {
		return &cdb.TruncatedChunkError{Kind: h.Kind, Want: h.BodyLimit - h.begin, Have: r.Pos() - h.begin}
	}
	end, err := r.U32()
	if err != nil {
		return err
	}
	if end != cdb.MagicEnd {
		return &cdb.BadMagicError{Field: "end-magic", Want: cdb.MagicEnd, Got: end}
	}
	return nil
}

// ReadRawBody reads every remaining byte of h's body up to its
// padding boundary and closes the chunk. Used for COLUMN_VALUES and
// COLUMN_BLOB_DATA, whose body length is not a fixed word count but
// is fully determined by the chunk's own declared size.
func ReadRawBody(r *bincursor.Reader, h Header) ([]byte, error) {
	n := h.BodyLimit - r.Pos()
	if n < 0 {
		return nil, &cdb.TruncatedChunkError{Kind: h.Kind, Want: 0, Have: n}
	}
	raw, err := r.Bytes(n)
	if err != nil {
		return nil, err
	}
	body := append([]byte(nil), raw...)
	if err := Finish(r, h); err != nil {
		return nil, err
	}
	return body, nil
}

// ReadU32Body reads a chunk whose entire body is a single
// little-endian uint32 (ROW_COUNT, TABLE_ID, TABLE_FLAGS,
// COLUMN_INDEX, COLUMN_DATA_TYPE, DATABASE_FLAGS) and closes it.
func ReadU32Body(r *bincursor.Reader, h Header) (uint32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	if err := Finish(r, h); err != nil {
		return 0, err
	}
	return v, nil
}

// ReadArrayBegin reads the ARRAY_BEGIN sentinel and element count
// that open an array body.
func ReadArrayBegin(r *bincursor.Reader) (count uint32, err error) {
	magic, err := r.U32()
	if err != nil {
		return 0, err
	}
	if magic != cdb.MagicArrayBegin {
		return 0, &cdb.BadMagicError{Field: "array-begin", Want: cdb.MagicArrayBegin, Got: magic}
	}
	return r.U32()
}

// ReadArrayEnd reads the ARRAY_END sentinel that closes an array
// body.
func ReadArrayEnd(r *bincursor.Reader) error {
	magic, err := r.U32()
	if err != nil {
		return err
	}
	if magic != cdb.MagicArrayEnd {
		return &cdb.BadMagicError{Field: "array-end", Want: cdb.MagicArrayEnd, Got: magic}
	}
	return nil
}
