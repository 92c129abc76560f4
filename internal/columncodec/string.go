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
)

// stringCodec handles DataType 2: the values chunk carries one
// 32-bit byte length per row, NUL included; the blob chunk (when
// present) carries a 4-byte total-size prefix followed by the rows'
// NUL-terminated UTF-8 bytes concatenated in order.
type stringCodec struct{}

func (stringCodec) Decode(rowCount uint32, values, blob []byte) ([]any, error) {
	if err := requireLen(values, int(rowCount)*4); err != nil {
		return nil, err
	}
	lengths := make([]uint32, rowCount)
	var total uint64
	for i := range lengths {
		lengths[i] = binary.LittleEndian.Uint32(values[i*4:])
		total += uint64(lengths[i])
	}

	payload := blob
	if total > 0 {
		if err := requireLen(blob, 4); err != nil {
			return nil, err
		}
		size := binary.LittleEndian.Uint32(blob[0:4])
		if uint64(size) != total {
			return nil, fmt.Errorf("cdb: string blob size %d does not match sum of row lengths %d", size, total)
		}
		payload = blob[4:]
	}

	rows := make([]any, rowCount)
	var off uint64
	for i, n := range lengths {
		if n == 0 {
			rows[i] = ""
			continue
		}
		if err := requireLen(payload, int(off)+int(n)); err != nil {
			return nil, err
		}
		raw := payload[off : off+uint64(n)]
		if raw[len(raw)-1] != 0 {
			return nil, fmt.Errorf("cdb: string row %d is not NUL-terminated", i)
		}
		rows[i] = string(raw[:len(raw)-1])
		off += uint64(n)
	}
	return rows, nil
}

func (stringCodec) Encode(rows []any) ([]byte, []byte, error) {
	lengths := make([]byte, len(rows)*4)
	var payload []byte
	for i, r := range rows {
		s, err := asString(r)
		if err != nil {
			return nil, nil, err
		}
		n := len(s) + 1 // + NUL
		binary.LittleEndian.PutUint32(lengths[i*4:], uint32(n))
		payload = append(payload, s...)
		payload = append(payload, 0)
	}
	if len(payload) == 0 {
		return lengths, nil, nil
	}
	blob := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(blob[0:4], uint32(len(payload)))
	copy(blob[4:], payload)
	return lengths, blob, nil
}

func asString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("cdb: cannot interpret %T as a string column value", v)
	}
}
