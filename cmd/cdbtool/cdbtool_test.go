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

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"cyanidedb.org/internal/assemble"
	"cyanidedb.org/internal/zlibframe"
	"cyanidedb.org/pkg/cdb"
)

func writeFixtureCDB(t *testing.T, path string) {
	t.Helper()
	rows := []int32{10, -20, 30}
	values := make([]byte, 0, len(rows)*4)
	for _, v := range rows {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(v))
		values = append(values, b...)
	}
	flags, ok := cdb.TableFlags(3)
	if !ok {
		t.Fatal("test fixture assumes table id 3 has a known TABLE_FLAGS entry")
	}
	tables := []cdb.Table{{
		Name:       "Items",
		ID:         3,
		RowCount:   uint32(len(rows)),
		Flags:      flags,
		FlagsKnown: true,
		Columns: []cdb.Column{
			{Name: "amount", Index: 0, Type: cdb.TypeInteger, Values: values},
		},
	}}
	chunkStream := assemble.EncodeDatabase(tables)
	compressed, err := zlibframe.Wrap(chunkStream)
	if err != nil {
		t.Fatalf("zlibframe.Wrap: %v", err)
	}
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

// TestDecodeEncodeVerifyChain exercises the decode, encode, and
// verify modes against one another end to end, without going through
// climain.Main (which calls os.Exit on failure).
func TestDecodeEncodeVerifyChain(t *testing.T) {
	dir := t.TempDir()
	cdbPath := filepath.Join(dir, "fixture.cdb")
	dbPath := filepath.Join(dir, "fixture.db")
	reEncodedPath := filepath.Join(dir, "fixture.out.cdb")

	writeFixtureCDB(t, cdbPath)

	if err := (&verifyCmd{}).RunCommand([]string{cdbPath}); err != nil {
		t.Fatalf("verify: %v", err)
	}

	dec := &decodeCmd{in: cdbPath, out: dbPath}
	if err := dec.RunCommand(nil); err != nil {
		t.Fatalf("decode: %v", err)
	}

	insp := &inspectCmd{db: dbPath}
	if err := insp.RunCommand(nil); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	enc := &encodeCmd{in: dbPath, out: reEncodedPath}
	if err := enc.RunCommand(nil); err != nil {
		t.Fatalf("encode: %v", err)
	}

	if err := (&verifyCmd{}).RunCommand([]string{reEncodedPath}); err != nil {
		t.Fatalf("verify re-encoded: %v", err)
	}
}

func TestDecodeRefusesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	cdbPath := filepath.Join(dir, "fixture.cdb")
	dbPath := filepath.Join(dir, "fixture.db")
	writeFixtureCDB(t, cdbPath)
	if err := os.WriteFile(dbPath, []byte("existing"), 0o644); err != nil {
		t.Fatalf("seed existing output: %v", err)
	}

	dec := &decodeCmd{in: cdbPath, out: dbPath}
	if err := dec.RunCommand(nil); err == nil {
		t.Fatal("decode onto an existing file: want error, got nil")
	}
}
