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

package cdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions that carry no extra context.
var (
	// ErrShortRead is returned when a read runs past the end of the
	// input the cursor was given.
	ErrShortRead = errors.New("cdb: short read")

	// ErrDecompressionFailed is returned when zlib reports an error
	// inflating a compressed CDB stream.
	ErrDecompressionFailed = errors.New("cdb: decompression failed")

	// ErrNullTableID is returned when DB_STRUCTURE carries a null
	// table identifier.
	ErrNullTableID = errors.New("cdb: DB_STRUCTURE row has a null table id")
)

// BadMagicError reports a sentinel mismatch at a specific framing
// position.
type BadMagicError struct {
	Field string
	Want  uint32
	Got   uint32
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("cdb: bad magic for %s: want 0x%08X, got 0x%08X", e.Field, e.Want, e.Got)
}

// TruncatedChunkError reports a chunk whose declared size runs past
// its parent's bounds.
type TruncatedChunkError struct {
	Kind Kind
	Want int
	Have int
}

func (e *TruncatedChunkError) Error() string {
	return fmt.Sprintf("cdb: truncated %s chunk: wants %d bytes, parent has %d", e.Kind, e.Want, e.Have)
}

// UnknownChunkKindError reports a tag outside the enumerated set of
// chunk kinds.
type UnknownChunkKindError struct {
	Kind Kind
}

func (e *UnknownChunkKindError) Error() string {
	return fmt.Sprintf("cdb: unknown chunk kind 0x%02X", uint32(e.Kind))
}

// UnknownDataTypeError reports a data-type enumerant outside
// {0,1,2,3,4,5,10,11}.
type UnknownDataTypeError struct {
	Type DataType
}

func (e *UnknownDataTypeError) Error() string {
	return fmt.Sprintf("cdb: unknown data type %d", uint8(e.Type))
}

// MissingChildError reports a required child chunk absent during
// table or column assembly.
type MissingChildError struct {
	Parent Kind
	Want   Kind
}

func (e *MissingChildError) Error() string {
	return fmt.Sprintf("cdb: %s missing required child %s", e.Parent, e.Want)
}

// UnknownTableIDError reports an encoder lookup miss in the
// table-flags map.
type UnknownTableIDError struct {
	TableID uint32
}

func (e *UnknownTableIDError) Error() string {
	return fmt.Sprintf("cdb: no TABLE_FLAGS value known for table id %d", e.TableID)
}

// MalformedListError reports list text that fails the
// parenthesis-comma grammar during encode.
type MalformedListError struct {
	Text   string
	Reason string
}

func (e *MalformedListError) Error() string {
	return fmt.Sprintf("cdb: malformed list %q: %s", e.Text, e.Reason)
}

// OutOfRangeError reports a value that does not fit the sub-width
// integer type annotated for its column.
type OutOfRangeError struct {
	Type  DataType
	Value int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cdb: value %d out of range for %s", e.Value, e.Type)
}
