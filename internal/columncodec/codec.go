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

// Package columncodec implements the eight per-data-type column
// codecs: given a row count and a column's raw values/blob chunk
// bytes, produce one relational value per row, and the inverse.
package columncodec

import "cyanidedb.org/pkg/cdb"

// Codec converts one column's raw CDB bytes to relational row values
// and back. Decode's returned slice and Encode's rows argument hold
// one element per row, of a single concrete Go type per data type:
// int64 for the integer-family and boolean types, float64 for FLOAT,
// and string for STRING and the two list types (already formatted or
// parsed per spec.md §4.5).
type Codec interface {
	// Decode interprets values (and blob, for types that carry
	// one) as rowCount relational row values.
	Decode(rowCount uint32, values, blob []byte) (rows []any, err error)

	// Encode serializes rows back into a values chunk body and,
	// for types that carry one, a blob chunk body. blob is nil
	// when the type never carries one, or when its total payload
	// is zero bytes (spec.md §4.5's blob-absence rule).
	Encode(rows []any) (values, blob []byte, err error)
}

// For returns the Codec implementing data type t.
func For(t cdb.DataType) (Codec, error) {
	switch t {
	case cdb.TypeInteger:
		return integerCodec{}, nil
	case cdb.TypeFloat:
		return floatCodec{}, nil
	case cdb.TypeString:
		return stringCodec{}, nil
	case cdb.TypeBoolean:
		return booleanCodec{}, nil
	case cdb.TypeIntegerByte:
		return integerByteCodec{}, nil
	case cdb.TypeIntegerShort:
		return integerShortCodec{}, nil
	case cdb.TypeFloatList:
		return floatListCodec{}, nil
	case cdb.TypeIntegerList:
		return integerListCodec{}, nil
	default:
		return nil, &cdb.UnknownDataTypeError{Type: t}
	}
}
