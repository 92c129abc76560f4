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

package columncodec

import (
	"encoding/binary"
	"strconv"
	"strings"

	"cyanidedb.org/pkg/cdb"
)

// integerListCodec handles DataType 11: the values chunk carries one
// element count per row, the blob (when present) a 4-byte total byte
// size followed by that many bytes of signed 32-bit integers
// concatenated in row order. The relational value for each row is its
// parenthesized, comma-separated text rendering, with "()" denoting
// zero elements.
type integerListCodec struct{}

func (integerListCodec) Decode(rowCount uint32, values, blob []byte) ([]any, error) {
	counts, total, err := listCounts(rowCount, values)
	if err != nil {
		return nil, err
	}
	payload, err := listPayload(blob, total, 4)
	if err != nil {
		return nil, err
	}

	rows := make([]any, rowCount)
	var off int
	for i, n := range counts {
		need := int(n) * 4
		if off+need > len(payload) {
			return nil, cdb.ErrShortRead
		}
		elems := make([]int32, n)
		for j := range elems {
			elems[j] = int32(binary.LittleEndian.Uint32(payload[off:]))
			off += 4
		}
		rows[i] = formatIntegerList(elems)
	}
	return rows, nil
}

func (integerListCodec) Encode(rows []any) ([]byte, []byte, error) {
	parsed := make([][]int32, len(rows))
	var totalElems int
	for i, r := range rows {
		text, err := asString(r)
		if err != nil {
			return nil, nil, err
		}
		elems, err := parseIntegerList(text)
		if err != nil {
			return nil, nil, &cdb.MalformedListError{Text: text, Reason: err.Error()}
		}
		parsed[i] = elems
		totalElems += len(elems)
	}

	values := make([]byte, len(rows)*4)
	for i, elems := range parsed {
		binary.LittleEndian.PutUint32(values[i*4:], uint32(len(elems)))
	}
	if totalElems == 0 {
		return values, nil, nil
	}
	blob := make([]byte, 4+totalElems*4)
	binary.LittleEndian.PutUint32(blob[0:4], uint32(totalElems*4))
	off := 4
	for _, elems := range parsed {
		for _, v := range elems {
			binary.LittleEndian.PutUint32(blob[off:], uint32(v))
			off += 4
		}
	}
	return values, blob, nil
}

// formatIntegerList renders a list of int32s as "(a,b,c)", with "()"
// for an empty list.
func formatIntegerList(values []int32) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.FormatInt(int64(v), 10)
	}
	return "(" + strings.Join(fields, ",") + ")"
}

// parseIntegerList is formatIntegerList's inverse. "()" parses to an
// empty (zero-element) slice, not a slice holding one empty field.
func parseIntegerList(text string) ([]int32, error) {
	fields := parseListFields(text)
	out := make([]int32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, err
		}
		out[i] = int32(v)
	}
	return out, nil
}
