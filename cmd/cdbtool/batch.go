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
	"path/filepath"
	"strconv"
	"strings"

	"go4.org/jsonconfig"
	"golang.org/x/sync/errgroup"

	_ "modernc.org/sqlite"

	"cyanidedb.org/internal/climain"
	"cyanidedb.org/internal/pipeline"
)

// batchCmd converts every matching file under a directory
// concurrently. Each file's decode or encode call still owns its own
// cursor and database handle exclusively; only the fan-out across
// files is concurrent.
type batchCmd struct {
	config string
}

func init() {
	climain.RegisterCommand("batch", func(flags *flag.FlagSet) climain.CommandRunner {
		cmd := new(batchCmd)
		flags.StringVar(&cmd.config, "config", "", "Path to a jsonconfig batch configuration file.")
		return cmd
	})
}

func (c *batchCmd) Describe() string {
	return "Convert every CDB or SQLite file under a directory concurrently."
}

func (c *batchCmd) Usage() {
	fmt.Fprintf(climain.Stderr, "Usage: cdbtool batch -config batch.json\n")
}

func (c *batchCmd) Examples() []string {
	return []string{"-config batch.json"}
}

// batchConfig is the shape read from the jsonconfig file:
//
//	{
//	  "dir": "/path/to/files",
//	  "mode": "decode",
//	  "tableFlags": {"4096": 17}
//	}
//
// mode "decode" converts every *.cdb file to a sibling *.db; mode
// "encode" converts every *.db file to a sibling *.cdb. tableFlags is
// optional and only consulted by encode; an entry there takes
// precedence over the built-in reference table for its identifier.
type batchConfig struct {
	dir        string
	mode       string
	tableFlags map[uint32]uint32
}

func loadBatchConfig(path string) (*batchConfig, error) {
	obj, err := jsonconfig.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &batchConfig{
		dir:  obj.RequiredString("dir"),
		mode: obj.RequiredString("mode"),
	}
	overrides := obj.OptionalObject("tableFlags")
	if err := obj.Validate(); err != nil {
		return nil, err
	}
	if cfg.mode != "decode" && cfg.mode != "encode" {
		return nil, fmt.Errorf("batch config: mode must be \"decode\" or \"encode\", got %q", cfg.mode)
	}
	if len(overrides) > 0 {
		cfg.tableFlags = make(map[uint32]uint32, len(overrides))
		for k, v := range overrides {
			id, err := strconv.ParseUint(k, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("batch config: tableFlags key %q: %w", k, err)
			}
			n, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("batch config: tableFlags[%q]: want a number, got %T", k, v)
			}
			cfg.tableFlags[uint32(id)] = uint32(n)
		}
	}
	return cfg, nil
}

func (c *batchCmd) RunCommand(args []string) error {
	if c.config == "" {
		return climain.UsageError("-config is required")
	}
	cfg, err := loadBatchConfig(c.config)
	if err != nil {
		return fmt.Errorf("%s: %w", c.config, err)
	}

	suffix := ".cdb"
	if cfg.mode == "encode" {
		suffix = ".db"
	}
	entries, err := os.ReadDir(cfg.dir)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.dir, err)
	}

	var g errgroup.Group
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		path := filepath.Join(cfg.dir, entry.Name())
		g.Go(func() error {
			if cfg.mode == "decode" {
				return batchDecodeOne(path)
			}
			return batchEncodeOne(path, cfg.tableFlags)
		})
	}
	return g.Wait()
}

func batchDecodeOne(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".db"

	db, err := sql.Open("sqlite", outPath)
	if err != nil {
		return fmt.Errorf("%s: %w", outPath, err)
	}
	defer db.Close()

	if err := pipeline.Decode(raw, db); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func batchEncodeOne(path string, overrides map[uint32]uint32) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer db.Close()

	raw, err := pipeline.EncodeWithFlags(db, overrides)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".cdb"
	return os.WriteFile(outPath, raw, 0o644)
}
