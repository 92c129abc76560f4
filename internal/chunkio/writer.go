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
	"cyanidedb.org/internal/bincursor"
	"cyanidedb.org/pkg/cdb"
)

type sizePatch struct {
	offset int
	size   uint32
}

// Writer emits a tree of framed chunks. Chunks are opened and closed
// in LIFO order; a chunk's final size is only known once everything
// nested inside it has been written, so Writer records a
// (header-offset, size) patch at each Close and applies all of them
// in Finalize.
type Writer struct {
	*bincursor.Writer

	open    []int
	patches []sizePatch
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{Writer: bincursor.NewWriter()}
}

func (w *Writer) open_(kind cdb.Kind, description string, hasDescription bool) {
	start := w.Len()
	w.open = append(w.open, start)

	w.WriteU32(cdb.MagicBegin)
	w.WriteU32(0) // size placeholder, patched in Finalize
	w.WriteU32(uint32(kind))
	w.WriteU32(0) // reserved flags

	if hasDescription {
		w.WriteU32(1)
		nameBytes := append([]byte(description), 0)
		w.WriteU32(uint32(len(nameBytes)))
		w.WriteBytes(nameBytes)
	} else {
		w.WriteU32(0)
	}

	w.WritePadding()
	w.WriteU32(cdb.MagicSeparator)
}

// Open begins a chunk with no description.
func (w *Writer) Open(kind cdb.Kind) {
	w.open_(kind, "", false)
}

// OpenNamed begins a chunk carrying a description, used for WRAPPER,
// TABLE and COLUMN chunks.
func (w *Writer) OpenNamed(kind cdb.Kind, description string) {
	w.open_(kind, description, true)
}

// Close ends the most recently opened chunk.
func (w *Writer) Close() {
	n := len(w.open) - 1
	start := w.open[n]
	w.open = w.open[:n]

	w.WritePadding()
	w.WriteU32(cdb.MagicEnd)

	size := uint32(w.Len() - start)
	// the size field sits 4 bytes into the chunk header, right
	// after begin-magic.
	w.patches = append(w.patches, sizePatch{offset: start + 4, size: size})
}

// WriteU32Chunk writes a complete chunk whose body is a single
// little-endian uint32.
func (w *Writer) WriteU32Chunk(kind cdb.Kind, value uint32) {
	w.Open(kind)
	w.WriteU32(value)
	w.Close()
}

// WriteBytesChunk writes a complete chunk whose body is the raw bytes
// of body, used for COLUMN_VALUES and COLUMN_BLOB_DATA.
func (w *Writer) WriteBytesChunk(kind cdb.Kind, body []byte) {
	w.Open(kind)
	w.WriteBytes(body)
	w.Close()
}

// BeginArray opens an array body: ARRAY_BEGIN followed by the element
// count. The caller writes count chunks of one kind, then calls
// EndArray.
func (w *Writer) BeginArray(count uint32) {
	w.WriteU32(cdb.MagicArrayBegin)
	w.WriteU32(count)
}

// EndArray closes an array body with ARRAY_END.
func (w *Writer) EndArray() {
	w.WriteU32(cdb.MagicArrayEnd)
}

// Finalize applies every recorded size back-patch and returns the
// completed chunk stream. The Writer must have no chunks left open.
func (w *Writer) Finalize() []byte {
	for _, p := range w.patches {
		w.PutU32At(p.offset, p.size)
	}
	return w.Bytes()
}
