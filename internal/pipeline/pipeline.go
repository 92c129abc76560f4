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

// Package pipeline wires the decoder and encoder pipelines end to
// end: zlib framing, chunk assembly, and relational materialization,
// in the order internal/zlibframe → internal/assemble → internal/sqlrel
// for decode, and the reverse for encode. cmd/cdbtool is the only
// caller; the wiring lives here rather than there so it is covered by
// package tests independent of the CLI.
package pipeline

import (
	"database/sql"
	"fmt"

	"cyanidedb.org/internal/assemble"
	"cyanidedb.org/internal/sqlrel"
	"cyanidedb.org/internal/zlibframe"
)

// Decode turns a CDB file's raw bytes into a freshly built relational
// database in db. db must be empty; Decode creates all its schema.
func Decode(raw []byte, db *sql.DB) error {
	chunkStream, _, err := zlibframe.Unwrap(raw)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	tables, err := assemble.DecodeDatabase(chunkStream)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := sqlrel.Build(db, tables); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}

// Encode inspects db's relational schema and rows and re-serializes
// them as a compressed CDB file. Table emission order follows
// sqlrel.Inspect's DB_STRUCTURE read, which is ordered by ascending
// table identifier.
func Encode(db *sql.DB) ([]byte, error) {
	return EncodeWithFlags(db, nil)
}

// EncodeWithFlags is Encode, but lets a caller supply TABLE_FLAGS
// values for table identifiers absent from the built-in reference
// table, via sqlrel.InspectWithFlags.
func EncodeWithFlags(db *sql.DB, flagOverrides map[uint32]uint32) ([]byte, error) {
	tables, err := sqlrel.InspectWithFlags(db, flagOverrides)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	chunkStream := assemble.EncodeDatabase(tables)
	wrapped, err := zlibframe.Wrap(chunkStream)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return wrapped, nil
}
