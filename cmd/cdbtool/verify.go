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
	"bytes"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"cyanidedb.org/internal/climain"
	"cyanidedb.org/internal/pipeline"
	"cyanidedb.org/internal/zlibframe"
)

// verifyCmd operationalizes invariant 1 of the codec's contract:
// decoding a file and immediately re-encoding it must reproduce the
// same decompressed chunk stream. It never writes its intermediate
// database to disk.
type verifyCmd struct{}

func init() {
	climain.RegisterCommand("verify", func(flags *flag.FlagSet) climain.CommandRunner {
		return new(verifyCmd)
	})
}

func (c *verifyCmd) Describe() string {
	return "Round-trip a CDB file through decode and encode and diff the result."
}

func (c *verifyCmd) Usage() {
	fmt.Fprintf(climain.Stderr, "Usage: cdbtool verify file.cdb\n")
}

func (c *verifyCmd) Examples() []string {
	return []string{"export.cdb"}
}

func (c *verifyCmd) RunCommand(args []string) error {
	if len(args) != 1 {
		return climain.UsageError("exactly one CDB file argument required")
	}
	path := args[0]

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return err
	}
	defer db.Close()

	if err := pipeline.Decode(raw, db); err != nil {
		return fmt.Errorf("%s: decode: %w", path, err)
	}
	reencoded, err := pipeline.Encode(db)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", path, err)
	}

	want, _, err := zlibframe.Unwrap(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	got, _, err := zlibframe.Unwrap(reencoded)
	if err != nil {
		return fmt.Errorf("%s: re-encoded stream: %w", path, err)
	}
	if !bytes.Equal(want, got) {
		return fmt.Errorf("%s: re-encoded chunk stream differs from the original", path)
	}

	fmt.Fprintf(climain.Stdout, "%s: round-trip OK\n", path)
	return nil
}
