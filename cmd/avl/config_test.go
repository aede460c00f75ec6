// Copyright 2025 Lev Pechersky
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBenchConfigDefaults(t *testing.T) {
	config, err := LoadBenchConfig("")
	if err != nil {
		t.Fatalf("empty path must fall back to defaults: %v", err)
	}
	if len(config.Scenarios) == 0 {
		t.Fatal("default config has no scenarios")
	}
}

func TestLoadBenchConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := `scenarios:
  - name: tiny
    operations: 100
    key_space: 100000
    seed: 7
    merge: true
  - operations: -5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadBenchConfig(path)
	if err != nil {
		t.Fatalf("LoadBenchConfig: %v", err)
	}
	if len(config.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(config.Scenarios))
	}

	s := config.Scenarios[0]
	if s.Name != "tiny" || s.Operations != 100 || s.KeySpace != 100000 || s.Seed != 7 || !s.Merge {
		t.Errorf("first scenario parsed wrong: %+v", s)
	}

	// The second scenario is incomplete and gets sane defaults.
	s = config.Scenarios[1]
	if s.Name != "scenario-2" {
		t.Errorf("defaulted name: %q", s.Name)
	}
	if s.Operations <= 0 {
		t.Errorf("operations not defaulted: %d", s.Operations)
	}
	if s.KeySpace < s.Operations*2 {
		t.Errorf("key space not widened: %d for %d operations", s.KeySpace, s.Operations)
	}
}

func TestLoadBenchConfigErrors(t *testing.T) {
	if _, err := LoadBenchConfig("/nonexistent/bench.yaml"); err == nil {
		t.Error("missing file must error")
	}

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("scenarios: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBenchConfig(path); err == nil {
		t.Error("config without scenarios must error")
	}
}
