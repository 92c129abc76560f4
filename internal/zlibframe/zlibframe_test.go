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

package zlibframe

import (
	"bytes"
	"testing"
)

func TestUncompressedPassthrough(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5}
	out, compressed, err := Unwrap(in)
	if err != nil || compressed {
		t.Fatalf("Unwrap(plain) = %v, %v, %v; want unchanged, false, nil", out, compressed, err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("Unwrap(plain) = %v, want %v", out, in)
	}
}

func TestWrapUnwrapRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte("cyanide database chunk stream "), 100)
	wrapped, err := Wrap(original)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	got, compressed, err := Unwrap(wrapped)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if !compressed {
		t.Fatal("Unwrap(wrapped) reported wasCompressed=false")
	}
	if !bytes.Equal(got, original) {
		t.Fatal("round trip did not reproduce the original decompressed stream")
	}
}

func TestUnwrapBadPayload(t *testing.T) {
	bogus := []byte{0xFF, 0xFF, 0xFF, 0xFF, 5, 0, 0, 0, 3, 0, 0, 0, 'n', 'o', 'p'}
	if _, _, err := Unwrap(bogus); err == nil {
		t.Fatal("Unwrap on garbage zlib payload: want error, got nil")
	}
}
