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

package bincursor

import (
	"bytes"
	"errors"
	"testing"

	"cyanidedb.org/pkg/cdb"
)

var paddingTests = []struct {
	pos  int
	want int
}{
	{0, 0},
	{1, 3},
	{2, 2},
	{3, 1},
	{4, 0},
	{5, 3},
	{8, 0},
}

func TestPadding(t *testing.T) {
	for _, tt := range paddingTests {
		if got := Padding(tt.pos); got != tt.want {
			t.Errorf("Padding(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestReaderU32RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU32(0xAAAAAAAA)
	w.WriteU32(1234)
	r := NewReader(w.Bytes())
	got, err := r.U32()
	if err != nil || got != 0xAAAAAAAA {
		t.Fatalf("first U32() = %d, %v; want 0xAAAAAAAA, nil", got, err)
	}
	got, err = r.U32()
	if err != nil || got != 1234 {
		t.Fatalf("second U32() = %d, %v; want 1234, nil", got, err)
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if _, err := r.U32(); !errors.Is(err, cdb.ErrShortRead) {
		t.Fatalf("U32() on 3 bytes: err = %v, want cdb.ErrShortRead", err)
	}
}

func TestWriterPadding(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{1, 2, 3})
	w.WritePadding()
	if w.Len() != 4 {
		t.Fatalf("Len() after padding 3 bytes = %d, want 4", w.Len())
	}
	if !bytes.Equal(w.Bytes(), []byte{1, 2, 3, 0}) {
		t.Fatalf("Bytes() = %v, want [1 2 3 0]", w.Bytes())
	}
}

func TestPutU32AtBackPatch(t *testing.T) {
	w := NewWriter()
	offset := w.Len()
	w.WriteU32(0) // placeholder
	w.WriteBytes([]byte("hello"))
	w.PutU32At(offset, 0xDEADBEEF)
	r := NewReader(w.Bytes())
	got, _ := r.U32()
	if got != 0xDEADBEEF {
		t.Fatalf("back-patched value = 0x%X, want 0xDEADBEEF", got)
	}
}

func TestWriterGrowthPreservesContent(t *testing.T) {
	w := NewWriter()
	for i := 0; i < 1000; i++ {
		w.WriteU32(uint32(i))
	}
	if w.Len() != 4000 {
		t.Fatalf("Len() = %d, want 4000", w.Len())
	}
	r := NewReader(w.Bytes())
	for i := 0; i < 1000; i++ {
		got, err := r.U32()
		if err != nil || got != uint32(i) {
			t.Fatalf("value %d = %d, %v; want %d, nil", i, got, err, i)
		}
	}
}
