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

// Package zlibframe implements the optional outer compression framing
// a CDB file may carry around its chunk stream: a 0xFFFFFFFF magic,
// an uncompressed and compressed size, and a zlib-deflate payload.
package zlibframe

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"cyanidedb.org/pkg/cdb"
)

// Unwrap inflates input if it carries the compression magic, and
// otherwise returns it unchanged as an already-decompressed chunk
// stream. The second return value reports which case applied.
func Unwrap(input []byte) (chunkStream []byte, wasCompressed bool, err error) {
	if len(input) < 12 || binary.LittleEndian.Uint32(input[0:4]) != cdb.MagicCompressed {
		return input, false, nil
	}

	uncompressedSize := binary.LittleEndian.Uint32(input[4:8])
	compressedSize := binary.LittleEndian.Uint32(input[8:12])
	if 12+int(compressedSize) > len(input) {
		return nil, false, cdb.ErrShortRead
	}
	payload := input[12 : 12+compressedSize]

	zr, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", cdb.ErrDecompressionFailed, err)
	}
	defer zr.Close()

	out := make([]byte, 0, uncompressedSize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, false, fmt.Errorf("%w: %v", cdb.ErrDecompressionFailed, err)
	}
	return buf.Bytes(), true, nil
}

// Wrap always produces the compressed form: magic, uncompressed size,
// compressed size, then the zlib-deflate of chunkStream.
func Wrap(chunkStream []byte) ([]byte, error) {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(chunkStream); err != nil {
		return nil, fmt.Errorf("cdb: zlib deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("cdb: zlib deflate: %w", err)
	}

	out := make([]byte, 12+compressed.Len())
	binary.LittleEndian.PutUint32(out[0:4], cdb.MagicCompressed)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(chunkStream)))
	binary.LittleEndian.PutUint32(out[8:12], uint32(compressed.Len()))
	copy(out[12:], compressed.Bytes())
	return out, nil
}
