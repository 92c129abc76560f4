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
	"strings"
)

func leUint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func errListSizeMismatch(got uint32, want int) error {
	return fmt.Errorf("cdb: list blob size %d does not match expected %d", got, want)
}

// parseListFields strips one layer of surrounding parentheses and
// splits on commas, trimming whitespace from each field. "()"
// parses to zero fields, not one empty field.
func parseListFields(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// listCounts reads the values chunk shared by DataType 10 and 11:
// rowCount little-endian uint32 element counts, one per row.
func listCounts(rowCount uint32, values []byte) ([]uint32, uint32, error) {
	if err := requireLen(values, int(rowCount)*4); err != nil {
		return nil, 0, err
	}
	counts := make([]uint32, rowCount)
	var total uint64
	for i := range counts {
		counts[i] = leUint32(values[i*4:])
		total += uint64(counts[i])
	}
	return counts, uint32(total), nil
}

// listPayload returns the blob's element payload (after its 4-byte
// size prefix), tolerating a wholly absent blob when the total
// element count is zero.
func listPayload(blob []byte, totalElements uint32, elementSize int) ([]byte, error) {
	wantBytes := int(totalElements) * elementSize
	if totalElements == 0 {
		return nil, nil
	}
	if err := requireLen(blob, 4); err != nil {
		return nil, err
	}
	size := leUint32(blob[0:4])
	if int(size) != wantBytes {
		return nil, errListSizeMismatch(size, wantBytes)
	}
	return blob[4:], nil
}
