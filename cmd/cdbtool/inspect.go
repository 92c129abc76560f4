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

	_ "modernc.org/sqlite"

	"cyanidedb.org/internal/climain"
	"cyanidedb.org/internal/sqlrel"
)

type inspectCmd struct {
	db string
}

func init() {
	climain.RegisterCommand("inspect", func(flags *flag.FlagSet) climain.CommandRunner {
		cmd := new(inspectCmd)
		flags.StringVar(&cmd.db, "db", "", "Path to a SQLite database previously built by decode.")
		return cmd
	})
}

func (c *inspectCmd) Describe() string {
	return "Print a table and column summary without decoding any row values."
}

func (c *inspectCmd) Usage() {
	fmt.Fprintf(climain.Stderr, "Usage: cdbtool inspect -db file.db\n")
}

func (c *inspectCmd) Examples() []string {
	return []string{"-db export.db"}
}

func (c *inspectCmd) RunCommand(args []string) error {
	if c.db == "" {
		return climain.UsageError("-db is required")
	}

	db, err := sql.Open("sqlite", c.db)
	if err != nil {
		return fmt.Errorf("%s: %w", c.db, err)
	}
	defer db.Close()

	tables, err := sqlrel.Summarize(db)
	if err != nil {
		return fmt.Errorf("%s: %w", c.db, err)
	}
	for _, t := range tables {
		fmt.Fprintf(climain.Stdout, "%s (id=%d, rows=%d)\n", t.Name, t.ID, t.RowCount)
		for _, col := range t.Columns {
			fmt.Fprintf(climain.Stdout, "  %s  %s  index=%d\n", col.Name, col.Type, col.Index)
		}
	}
	return nil
}
