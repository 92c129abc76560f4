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

	"cyanidedb.org/pkg/cdb"
)

// integerCodec handles DataType 0: N*4 bytes, signed 32-bit.
type integerCodec struct{}

func (integerCodec) Decode(rowCount uint32, values, blob []byte) ([]any, error) {
	if err := requireLen(values, int(rowCount)*4); err != nil {
		return nil, err
	}
	rows := make([]any, rowCount)
	for i := range rows {
		rows[i] = int64(int32(binary.LittleEndian.Uint32(values[i*4:])))
	}
	return rows, nil
}

func (integerCodec) Encode(rows []any) ([]byte, []byte, error) {
	values := make([]byte, len(rows)*4)
	for i, r := range rows {
		v, err := asInt64(r)
		if err != nil {
			return nil, nil, err
		}
		if v < -(1<<31) || v > (1<<31)-1 {
			return nil, nil, &cdb.OutOfRangeError{Type: cdb.TypeInteger, Value: v}
		}
		binary.LittleEndian.PutUint32(values[i*4:], uint32(int32(v)))
	}
	return values, nil, nil
}

// integerByteCodec handles DataType 4: N bytes, signed 8-bit.
type integerByteCodec struct{}

func (integerByteCodec) Decode(rowCount uint32, values, blob []byte) ([]any, error) {
	if err := requireLen(values, int(rowCount)); err != nil {
		return nil, err
	}
	rows := make([]any, rowCount)
	for i := range rows {
		rows[i] = int64(int8(values[i]))
	}
	return rows, nil
}

func (integerByteCodec) Encode(rows []any) ([]byte, []byte, error) {
	values := make([]byte, len(rows))
	for i, r := range rows {
		v, err := asInt64(r)
		if err != nil {
			return nil, nil, err
		}
		if v < -128 || v > 127 {
			return nil, nil, &cdb.OutOfRangeError{Type: cdb.TypeIntegerByte, Value: v}
		}
		values[i] = byte(int8(v))
	}
	return values, nil, nil
}

// integerShortCodec handles DataType 5: N*2 bytes, unsigned 16-bit.
type integerShortCodec struct{}

func (integerShortCodec) Decode(rowCount uint32, values, blob []byte) ([]any, error) {
	if err := requireLen(values, int(rowCount)*2); err != nil {
		return nil, err
	}
	rows := make([]any, rowCount)
	for i := range rows {
		rows[i] = int64(binary.LittleEndian.Uint16(values[i*2:]))
	}
	return rows, nil
}

func (integerShortCodec) Encode(rows []any) ([]byte, []byte, error) {
	values := make([]byte, len(rows)*2)
	for i, r := range rows {
		v, err := asInt64(r)
		if err != nil {
			return nil, nil, err
		}
		if v < 0 || v > 0xFFFF {
			return nil, nil, &cdb.OutOfRangeError{Type: cdb.TypeIntegerShort, Value: v}
		}
		binary.LittleEndian.PutUint16(values[i*2:], uint16(v))
	}
	return values, nil, nil
}

func requireLen(b []byte, want int) error {
	if len(b) < want {
		return cdb.ErrShortRead
	}
	return nil
}

// asInt64 accepts the handful of numeric Go types database/sql and
// our own callers plausibly hand a row value as.
func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("cdb: cannot interpret %T as an integer column value", v)
	}
}
