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

package chunkio

import (
	"errors"
	"testing"

	"cyanidedb.org/internal/bincursor"
	"cyanidedb.org/pkg/cdb"
)

func TestWriteReadU32Chunk(t *testing.T) {
	w := NewWriter()
	w.WriteU32Chunk(cdb.KindDatabaseFlags, cdb.DatabaseFlagsValue)
	buf := w.Finalize()

	r := bincursor.NewReader(buf)
	h, err := ReadHeader(r, -1)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Kind != cdb.KindDatabaseFlags {
		t.Fatalf("Kind = %v, want KindDatabaseFlags", h.Kind)
	}
	got, err := ReadU32Body(r, h)
	if err != nil {
		t.Fatalf("ReadU32Body: %v", err)
	}
	if got != cdb.DatabaseFlagsValue {
		t.Fatalf("value = %d, want %d", got, cdb.DatabaseFlagsValue)
	}
}

// TestSizeFieldMatchesSpan exercises invariant 3 of spec.md §8: a chunk's
// reported size equals the byte distance from its begin-magic through
// its end-magic inclusive.
func TestSizeFieldMatchesSpan(t *testing.T) {
	w := NewWriter()
	w.OpenNamed(cdb.KindWrapper, cdb.WrapperDescription)
	w.WriteU32Chunk(cdb.KindDatabaseFlags, cdb.DatabaseFlagsValue)
	w.Close()
	buf := w.Finalize()

	if len(buf) == 0 {
		t.Fatal("empty output")
	}
	size := uint32(buf[4]) | uint32(buf[5])<<8 | uint32(buf[6])<<16 | uint32(buf[7])<<24
	if int(size) != len(buf) {
		t.Fatalf("wrapper size field = %d, want %d (whole buffer, since wrapper is the root chunk)", size, len(buf))
	}
}

func TestNestedChunkAndDescription(t *testing.T) {
	w := NewWriter()
	w.OpenNamed(cdb.KindTable, "Items")
	w.WriteU32Chunk(cdb.KindTableID, 42)
	w.Close()
	buf := w.Finalize()

	r := bincursor.NewReader(buf)
	h, err := ReadHeader(r, -1)
	if err != nil {
		t.Fatalf("ReadHeader outer: %v", err)
	}
	if h.Kind != cdb.KindTable || h.Description != "Items" {
		t.Fatalf("outer = %v %q, want TABLE %q", h.Kind, h.Description, "Items")
	}

	inner, err := ReadHeader(r, h.BodyLimit)
	if err != nil {
		t.Fatalf("ReadHeader inner: %v", err)
	}
	id, err := ReadU32Body(r, inner)
	if err != nil {
		t.Fatalf("ReadU32Body: %v", err)
	}
	if id != 42 {
		t.Fatalf("table id = %d, want 42", id)
	}
	if err := Finish(r, h); err != nil {
		t.Fatalf("Finish outer: %v", err)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Open(cdb.KindDatabaseTables)
	w.BeginArray(2)
	w.WriteU32Chunk(cdb.KindTableID, 1)
	w.WriteU32Chunk(cdb.KindTableID, 2)
	w.EndArray()
	w.Close()
	buf := w.Finalize()

	r := bincursor.NewReader(buf)
	h, err := ReadHeader(r, -1)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	count, err := ReadArrayBegin(r)
	if err != nil {
		t.Fatalf("ReadArrayBegin: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	for i := uint32(0); i < count; i++ {
		elemHeader, err := ReadHeader(r, h.BodyLimit)
		if err != nil {
			t.Fatalf("ReadHeader elem %d: %v", i, err)
		}
		v, err := ReadU32Body(r, elemHeader)
		if err != nil {
			t.Fatalf("ReadU32Body elem %d: %v", i, err)
		}
		if v != i+1 {
			t.Fatalf("elem %d value = %d, want %d", i, v, i+1)
		}
	}
	if err := ReadArrayEnd(r); err != nil {
		t.Fatalf("ReadArrayEnd: %v", err)
	}
	if err := Finish(r, h); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestRawBodyRoundTrip(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7}
	w := NewWriter()
	w.WriteBytesChunk(cdb.KindColumnValues, payload)
	buf := w.Finalize()

	r := bincursor.NewReader(buf)
	h, err := ReadHeader(r, -1)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	got, err := ReadRawBody(r, h)
	if err != nil {
		t.Fatalf("ReadRawBody: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("body = %v, want %v", got, payload)
	}
}

func TestBadMagicDetected(t *testing.T) {
	buf := make([]byte, 32)
	r := bincursor.NewReader(buf)
	_, err := ReadHeader(r, -1)
	var bme *cdb.BadMagicError
	if !errors.As(err, &bme) {
		t.Fatalf("ReadHeader on zeroed buffer: err = %v, want *cdb.BadMagicError", err)
	}
}

func TestUnknownChunkKind(t *testing.T) {
	w := bincursor.NewWriter()
	w.WriteU32(cdb.MagicBegin)
	w.WriteU32(16)
	w.WriteU32(0x7F) // not a known kind
	w.WriteU32(0)
	r := bincursor.NewReader(w.Bytes())
	_, err := ReadHeader(r, -1)
	var uke *cdb.UnknownChunkKindError
	if !errors.As(err, &uke) {
		t.Fatalf("ReadHeader with bad kind: err = %v, want *cdb.UnknownChunkKindError", err)
	}
}
