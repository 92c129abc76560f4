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
	"math"
	"strconv"
	"strings"

	"cyanidedb.org/pkg/cdb"
)

// floatListCodec handles DataType 10: the values chunk carries one
// element count per row, the blob (when present) a 4-byte total byte
// size followed by that many bytes of IEEE-754 singles concatenated
// in row order. The relational value for each row is its
// parenthesized, comma-separated text rendering.
type floatListCodec struct{}

func (floatListCodec) Decode(rowCount uint32, values, blob []byte) ([]any, error) {
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
		elems := make([]float32, n)
		for j := range elems {
			bits := binary.LittleEndian.Uint32(payload[off:])
			elems[j] = math.Float32frombits(bits)
			off += 4
		}
		rows[i] = formatFloatList(elems)
	}
	return rows, nil
}

func (floatListCodec) Encode(rows []any) ([]byte, []byte, error) {
	parsed := make([][]float32, len(rows))
	var totalElems int
	for i, r := range rows {
		text, err := asString(r)
		if err != nil {
			return nil, nil, err
		}
		elems, err := parseFloatList(text)
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
			binary.LittleEndian.PutUint32(blob[off:], math.Float32bits(v))
			off += 4
		}
	}
	return values, blob, nil
}

// formatFloatList renders floats per spec: each value to six decimal
// places, trailing fractional zeros stripped, a trailing lone
// decimal point stripped, and a bare ".0" appended when the result
// lost its decimal point entirely and the list holds more than one
// element.
func formatFloatList(values []float32) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = formatListFloat(float64(v), len(values) > 1)
	}
	return "(" + strings.Join(fields, ",") + ")"
}

func formatListFloat(v float64, multiElement bool) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if !strings.Contains(s, ".") && multiElement {
		s += ".0"
	}
	return s
}

// parseFloatList is formatFloatList's inverse.
func parseFloatList(text string) ([]float32, error) {
	fields := parseListFields(text)
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}
