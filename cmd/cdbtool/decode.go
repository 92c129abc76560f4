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

type decodeCmd struct {
	in  string
	out string
}

func init() {
	climain.RegisterCommand("decode", func(flags *flag.FlagSet) climain.CommandRunner {
		cmd := new(decodeCmd)
		flags.StringVar(&cmd.in, "in", "", "Path to the input CDB file.")
		flags.StringVar(&cmd.out, "out", "", "Path to the SQLite database to create. Must not already exist.")
		return cmd
	})
}

func (c *decodeCmd) Describe() string {
	return "Decode a CDB file into a SQLite relational mirror."
}

func (c *decodeCmd) Usage() {
	fmt.Fprintf(climain.Stderr, "Usage: cdbtool decode -in file.cdb -out file.db\n")
}

func (c *decodeCmd) Examples() []string {
	return []string{"-in export.cdb -out export.db"}
}

func (c *decodeCmd) RunCommand(args []string) error {
	if c.in == "" || c.out == "" {
		return climain.UsageError("both -in and -out are required")
	}
	if _, err := os.Stat(c.out); err == nil {
		return fmt.Errorf("%s: already exists", c.out)
	}

	raw, err := os.ReadFile(c.in)
	if err != nil {
		return fmt.Errorf("%s: %w", c.in, err)
	}

	db, err := sql.Open("sqlite", c.out)
	if err != nil {
		return fmt.Errorf("%s: %w", c.out, err)
	}
	defer db.Close()

	if err := pipeline.Decode(raw, db); err != nil {
		os.Remove(c.out)
		return fmt.Errorf("%s: %w", c.in, err)
	}
	return nil
}
