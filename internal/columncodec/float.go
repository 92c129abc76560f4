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
	"fmt"
	"math"
)

// floatCodec handles DataType 1: N*4 bytes, an IEEE-754 single
// reinterpreted (never numerically cast) from its 32-bit word. Values
// are carried through the relational layer as float64, the widening
// conversion from float32 a lossless operation that IEEE-754
// round-to-nearest conversion back to float32 exactly reverses,
// including for NaN payloads, so NaN bit patterns survive a
// decode/encode round trip.
type floatCodec struct{}

func (floatCodec) Decode(rowCount uint32, values, blob []byte) ([]any, error) {
	if err := requireLen(values, int(rowCount)*4); err != nil {
		return nil, err
	}
	rows := make([]any, rowCount)
	for i := range rows {
		bits := binary.LittleEndian.Uint32(values[i*4:])
		rows[i] = float64(math.Float32frombits(bits))
	}
	return rows, nil
}

func (floatCodec) Encode(rows []any) ([]byte, []byte, error) {
	values := make([]byte, len(rows)*4)
	for i, r := range rows {
		f, err := asFloat64(r)
		if err != nil {
			return nil, nil, err
		}
		bits := math.Float32bits(float32(f))
		binary.LittleEndian.PutUint32(values[i*4:], bits)
	}
	return values, nil, nil
}

func asFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("cdb: cannot interpret %T as a float column value", v)
	}
}
