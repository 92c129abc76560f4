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
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestBatchDecodesEveryCDBInDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.cdb", "b.cdb"} {
		writeFixtureCDB(t, filepath.Join(dir, name))
	}

	configPath := filepath.Join(dir, "batch.json")
	config := fmt.Sprintf(`{"dir": %q, "mode": "decode"}`, dir)
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := &batchCmd{config: configPath}
	if err := cmd.RunCommand(nil); err != nil {
		t.Fatalf("batch: %v", err)
	}

	for _, name := range []string{"a.db", "b.db"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
}

func TestLoadBatchConfigRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "batch.json")
	config := fmt.Sprintf(`{"dir": %q, "mode": "shuffle"}`, dir)
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadBatchConfig(configPath); err == nil {
		t.Fatal("mode \"shuffle\": want error, got nil")
	}
}
