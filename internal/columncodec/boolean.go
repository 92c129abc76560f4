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

// booleanCodec handles DataType 3: ceil(N/8) bytes, row i living at
// bit i%8 of byte i/8, least-significant bit first.
type booleanCodec struct{}

func booleanByteCount(rowCount uint32) int {
	return int((rowCount + 7) / 8)
}

func (booleanCodec) Decode(rowCount uint32, values, blob []byte) ([]any, error) {
	if err := requireLen(values, booleanByteCount(rowCount)); err != nil {
		return nil, err
	}
	rows := make([]any, rowCount)
	for i := range rows {
		b := values[i/8]
		rows[i] = int64((b >> uint(i%8)) & 1)
	}
	return rows, nil
}

func (booleanCodec) Encode(rows []any) ([]byte, []byte, error) {
	values := make([]byte, booleanByteCount(uint32(len(rows))))
	for i, r := range rows {
		v, err := asInt64(r)
		if err != nil {
			return nil, nil, err
		}
		if v != 0 {
			values[i/8] |= 1 << uint(i%8)
		}
	}
	return values, nil, nil
}
