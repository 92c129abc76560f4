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
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"cyanidedb.org/internal/climain"
	"cyanidedb.org/internal/pipeline"
)

type encodeCmd struct {
	in  string
	out string
}

func init() {
	climain.RegisterCommand("encode", func(flags *flag.FlagSet) climain.CommandRunner {
		cmd := new(encodeCmd)
		flags.StringVar(&cmd.in, "in", "", "Path to the SQLite database built by decode.")
		flags.StringVar(&cmd.out, "out", "", "Path to the CDB file to write.")
		return cmd
	})
}

func (c *encodeCmd) Describe() string {
	return "Encode a SQLite relational mirror back into a CDB file."
}

func (c *encodeCmd) Usage() {
	fmt.Fprintf(climain.Stderr, "Usage: cdbtool encode -in file.db -out file.cdb\n")
}

func (c *encodeCmd) Examples() []string {
	return []string{"-in export.db -out export.cdb"}
}

func (c *encodeCmd) RunCommand(args []string) error {
	if c.in == "" || c.out == "" {
		return climain.UsageError("both -in and -out are required")
	}

	db, err := sql.Open("sqlite", c.in)
	if err != nil {
		return fmt.Errorf("%s: %w", c.in, err)
	}
	defer db.Close()

	raw, err := pipeline.Encode(db)
	if err != nil {
		return fmt.Errorf("%s: %w", c.in, err)
	}
	if err := os.WriteFile(c.out, raw, 0o644); err != nil {
		return fmt.Errorf("%s: %w", c.out, err)
	}
	return nil
}
