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

// Package bincursor provides a stateful little-endian cursor over a
// contiguous byte range, used by the chunk reader/writer and by every
// column codec.
package bincursor

import (
	"encoding/binary"

	"cyanidedb.org/pkg/cdb"
)

// Padding returns the number of zero bytes needed to bring pos up to
// the next 4-byte boundary.
func Padding(pos int) int {
	return (4 - (pos & 3)) & 3
}

// Reader reads sequentially from a fixed byte slice, failing with
// cdb.ErrShortRead rather than panicking when a read runs past the
// end.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current offset into the underlying buffer.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Bytes reads and returns the next n bytes without copying.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, cdb.ErrShortRead
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// U32 reads one little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// SkipPadding advances past the zero bytes that pad the cursor up to
// the next 4-byte boundary.
func (r *Reader) SkipPadding() error {
	n := Padding(r.pos)
	if n == 0 {
		return nil
	}
	_, err := r.Bytes(n)
	return err
}

// Writer appends little-endian data to a growable backing buffer.
// Growth is amortized 1.5x, never less than the tail a given write
// actually needs.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated buffer. The caller must not retain it
// across further writes.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) grow(n int) {
	need := len(w.buf) + n
	if cap(w.buf) >= need {
		return
	}
	newCap := cap(w.buf) + cap(w.buf)/2
	if newCap < need {
		newCap = need
	}
	nb := make([]byte, len(w.buf), newCap)
	copy(nb, w.buf)
	w.buf = nb
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.grow(len(b))
	w.buf = append(w.buf, b...)
}

// WriteU32 appends one little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	w.grow(4)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WritePadding appends the zero bytes needed to bring the writer up
// to the next 4-byte boundary.
func (w *Writer) WritePadding() {
	n := Padding(len(w.buf))
	if n == 0 {
		return
	}
	w.grow(n)
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// PutU32At overwrites the 4 bytes at offset with v. Used by the chunk
// writer's deferred size back-patch.
func (w *Writer) PutU32At(offset int, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[offset:offset+4], v)
}
